package mocks

import (
	"context"

	"github.com/sudhar3084/sriram-cab-service/domain"
)

// MockGoogleVerifier implements domain.GoogleVerifier interface for testing
type MockGoogleVerifier struct {
	VerifyFunc func(ctx context.Context, credential string) (*domain.GoogleClaims, error)
}

// NewMockGoogleVerifier creates a new MockGoogleVerifier with default behaviors
func NewMockGoogleVerifier() *MockGoogleVerifier {
	return &MockGoogleVerifier{}
}

// Verify verifies a Google ID token credential
func (m *MockGoogleVerifier) Verify(ctx context.Context, credential string) (*domain.GoogleClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, credential)
	}
	// Default behavior: rejected
	return nil, domain.ErrGoogleAuthFailed
}

// Compile-time interface compliance verification
var _ domain.GoogleVerifier = (*MockGoogleVerifier)(nil)
