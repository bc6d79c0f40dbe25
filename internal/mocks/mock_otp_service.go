package mocks

import (
	"context"

	"github.com/sudhar3084/sriram-cab-service/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueFunc  func(ctx context.Context, user *domain.User, slot domain.OTPSlot) (string, error)
	VerifyFunc func(ctx context.Context, user *domain.User, slot domain.OTPSlot, candidate string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue issues an OTP into the given slot
func (m *MockOTPService) Issue(ctx context.Context, user *domain.User, slot domain.OTPSlot) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, user, slot)
	}
	// Default behavior: fixed code
	return "123456", nil
}

// Verify verifies an OTP candidate against the given slot
func (m *MockOTPService) Verify(ctx context.Context, user *domain.User, slot domain.OTPSlot, candidate string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, user, slot, candidate)
	}
	// Default behavior: accepts the fixed code
	if candidate == "123456" {
		return nil
	}
	return domain.ErrOTPInvalid
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
