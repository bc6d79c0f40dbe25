package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sudhar3084/sriram-cab-service/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	googleSvc   domain.GoogleVerifier
	mailer      domain.Mailer
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	googleSvc domain.GoogleVerifier,
	mailer domain.Mailer,
	logger zerolog.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		googleSvc:   googleSvc,
		mailer:      mailer,
		logger:      logger,
	}
}

// Signup implements domain.AuthService. The new account is not logged in;
// no token is issued here.
func (s *AuthServiceImpl) Signup(ctx context.Context, name, email, phone, password string) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	user := &domain.User{
		Name:  name,
		Email: email,
		Phone: phone,
	}
	if err := s.setPassword(user, password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GoogleAuth implements domain.AuthService. An existing account gets its
// Google ID backfilled once; a set Google ID is never overwritten. Unknown
// emails get a fresh password-less account.
func (s *AuthServiceImpl) GoogleAuth(ctx context.Context, credential string) (*domain.AuthResult, error) {
	claims, err := s.googleSvc.Verify(ctx, credential)
	if err != nil {
		s.logger.Warn().Err(err).Msg("google credential rejected")
		return nil, domain.ErrGoogleAuthFailed
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Email)
	switch {
	case err == domain.ErrUserNotFound:
		user = &domain.User{
			Name:           claims.Name,
			Email:          claims.Email,
			GoogleID:       claims.Subject,
			ProfilePicture: claims.Picture,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	case err != nil:
		return nil, err
	case user.GoogleID == "":
		user.GoogleID = claims.Subject
		user.ProfilePicture = claims.Picture
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return s.loginResult(user)
}

// SendLoginOTP implements domain.AuthService. The issued code is returned
// for demo exposure; whether it reaches the response is the handler's call.
func (s *AuthServiceImpl) SendLoginOTP(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	code, err := s.otpSvc.Issue(ctx, user, domain.SlotLogin)
	if err != nil {
		return "", err
	}

	body := fmt.Sprintf("Your login OTP is: %s. Valid for 5 minutes.", code)
	if err := s.mailer.SendEmail(user.Email, "Sriram Cab Service - Login OTP", body); err != nil {
		return "", fmt.Errorf("failed to send OTP email: %w", err)
	}

	return code, nil
}

// VerifyLoginOTP implements domain.AuthService
func (s *AuthServiceImpl) VerifyLoginOTP(ctx context.Context, email, otp string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.otpSvc.Verify(ctx, user, domain.SlotLogin, otp); err != nil {
		return nil, err
	}

	return s.loginResult(user)
}

// ForgotPassword implements domain.AuthService
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	code, err := s.otpSvc.Issue(ctx, user, domain.SlotReset)
	if err != nil {
		return "", err
	}

	body := fmt.Sprintf("Your password reset code is: %s. Valid for 5 minutes.", code)
	if err := s.mailer.SendEmail(user.Email, "Sriram Cab Service - Password Reset", body); err != nil {
		return "", fmt.Errorf("failed to send OTP email: %w", err)
	}

	return code, nil
}

// ResetPassword implements domain.AuthService. No token is issued; the
// user logs in separately with the new password.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	if len(newPassword) < 4 {
		return domain.ErrPasswordTooShort
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := s.otpSvc.Verify(ctx, user, domain.SlotReset, otp); err != nil {
		return err
	}

	if err := s.setPassword(user, newPassword); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// Login implements domain.AuthService. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Debug().Str("email", email).Msg("login attempt for unknown email")
		return nil, domain.ErrInvalidCredentials
	}

	if user.PasswordHash == "" || !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.loginResult(user)
}

// setPassword hashes and stores a new password value on the user. Every
// password write goes through here.
func (s *AuthServiceImpl) setPassword(user *domain.User, password string) error {
	hashed, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hashed
	return nil
}

func (s *AuthServiceImpl) loginResult(user *domain.User) (*domain.AuthResult, error) {
	token, err := s.tokenSvc.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &domain.AuthResult{User: user, Token: token}, nil
}
