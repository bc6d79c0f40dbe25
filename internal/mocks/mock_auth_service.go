package mocks

import (
	"context"

	"github.com/sudhar3084/sriram-cab-service/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	SignupFunc         func(ctx context.Context, name, email, phone, password string) (*domain.User, error)
	GoogleAuthFunc     func(ctx context.Context, credential string) (*domain.AuthResult, error)
	SendLoginOTPFunc   func(ctx context.Context, email string) (string, error)
	VerifyLoginOTPFunc func(ctx context.Context, email, otp string) (*domain.AuthResult, error)
	ForgotPasswordFunc func(ctx context.Context, email string) (string, error)
	ResetPasswordFunc  func(ctx context.Context, email, otp, newPassword string) error
	LoginFunc          func(ctx context.Context, email, password string) (*domain.AuthResult, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Signup registers a new account
func (m *MockAuthService) Signup(ctx context.Context, name, email, phone, password string) (*domain.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, name, email, phone, password)
	}
	// Default behavior: success
	return &domain.User{ID: 1, Name: name, Email: email, Phone: phone}, nil
}

// GoogleAuth signs a user in with a Google credential
func (m *MockAuthService) GoogleAuth(ctx context.Context, credential string) (*domain.AuthResult, error) {
	if m.GoogleAuthFunc != nil {
		return m.GoogleAuthFunc(ctx, credential)
	}
	// Default behavior: rejected
	return nil, domain.ErrGoogleAuthFailed
}

// SendLoginOTP issues a login code
func (m *MockAuthService) SendLoginOTP(ctx context.Context, email string) (string, error) {
	if m.SendLoginOTPFunc != nil {
		return m.SendLoginOTPFunc(ctx, email)
	}
	// Default behavior: fixed code
	return "123456", nil
}

// VerifyLoginOTP completes an OTP login
func (m *MockAuthService) VerifyLoginOTP(ctx context.Context, email, otp string) (*domain.AuthResult, error) {
	if m.VerifyLoginOTPFunc != nil {
		return m.VerifyLoginOTPFunc(ctx, email, otp)
	}
	// Default behavior: accepts the fixed code
	if otp != "123456" {
		return nil, domain.ErrOTPInvalid
	}
	return &domain.AuthResult{User: &domain.User{ID: 1, Email: email}, Token: "token_1"}, nil
}

// ForgotPassword issues a password reset code
func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	// Default behavior: fixed code
	return "123456", nil
}

// ResetPassword completes a password reset
func (m *MockAuthService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, otp, newPassword)
	}
	// Default behavior: success
	return nil
}

// Login verifies an email/password pair
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: success
	return &domain.AuthResult{User: &domain.User{ID: 1, Email: email}, Token: "token_1"}, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
