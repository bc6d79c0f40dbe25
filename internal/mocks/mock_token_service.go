package mocks

import (
	"fmt"

	"github.com/sudhar3084/sriram-cab-service/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	IssueFunc    func(userID uint) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue issues a token for a user
func (m *MockTokenService) Issue(userID uint) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID)
	}
	// Default behavior: predictable token
	return fmt.Sprintf("token_%d", userID), nil
}

// Validate validates a token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
