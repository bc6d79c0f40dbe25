package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrGoogleAuthFailed   = errors.New("google authentication failed")
)

// Validation errors
var (
	ErrPasswordTooShort = errors.New("password must be at least 4 characters")
)

// OTP errors
var (
	ErrOTPNotFound  = errors.New("otp not found")
	ErrOTPInvalid   = errors.New("invalid otp code")
	ErrOTPExpired   = errors.New("otp has expired")
	ErrOTPThrottled = errors.New("otp resend limit exceeded")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)
