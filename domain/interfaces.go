package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
}

// BookingRepository defines booking data access operations
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	ListByUser(ctx context.Context, userID uint) ([]Booking, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*User, error)
	GoogleAuth(ctx context.Context, credential string) (*AuthResult, error)
	SendLoginOTP(ctx context.Context, email string) (string, error)
	VerifyLoginOTP(ctx context.Context, email, otp string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// BookingService defines booking business logic
type BookingService interface {
	Create(ctx context.Context, userID uint, input BookingInput) (*Booking, error)
	List(ctx context.Context, userID uint) ([]Booking, error)
}

// OTPService defines one-time-code operations against a user's OTP slots
type OTPService interface {
	Issue(ctx context.Context, user *User, slot OTPSlot) (string, error)
	Verify(ctx context.Context, user *User, slot OTPSlot, candidate string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines bearer token operations
type TokenService interface {
	Issue(userID uint) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// GoogleVerifier verifies a Google ID token credential and extracts its
// identity claims.
type GoogleVerifier interface {
	Verify(ctx context.Context, credential string) (*GoogleClaims, error)
}

// Mailer defines outbound email delivery
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// TokenClaims represents the claims carried by a session token
type TokenClaims struct {
	UserID    uint  `json:"user_id"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}
