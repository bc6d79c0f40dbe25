package mocks

import (
	"sync"

	"github.com/sudhar3084/sriram-cab-service/domain"
)

// SentEmail records one delivered message
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// MockMailer implements domain.Mailer interface for testing. Sent messages
// are recorded for assertions.
type MockMailer struct {
	SendEmailFunc func(to, subject, body string) error

	mu   sync.Mutex
	Sent []SentEmail
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// SendEmail sends an email
func (m *MockMailer) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	// Default behavior: record and succeed
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}

// Compile-time interface compliance verification
var _ domain.Mailer = (*MockMailer)(nil)
