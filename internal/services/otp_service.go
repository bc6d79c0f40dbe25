package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sudhar3084/sriram-cab-service/domain"
)

// OTPServiceImpl implements domain.OTPService. Codes live on the user
// record itself, one (code, expiry) pair per slot, persisted through the
// user repository. Concurrent issue/verify on the same slot is a benign
// last-write-wins race; codes are single-use and short-lived.
type OTPServiceImpl struct {
	userRepo    domain.UserRepository
	redisClient *redis.Client
	config      OTPConfig
	logger      zerolog.Logger
}

type OTPConfig struct {
	TTL          time.Duration
	ResendWindow time.Duration
}

// NewOTPService creates a new OTP service. redisClient may be nil, in
// which case resend throttling is disabled.
func NewOTPService(userRepo domain.UserRepository, redisClient *redis.Client, config OTPConfig, logger zerolog.Logger) domain.OTPService {
	return &OTPServiceImpl{
		userRepo:    userRepo,
		redisClient: redisClient,
		config:      config,
		logger:      logger,
	}
}

// Issue implements domain.OTPService. A 6-digit code is stored in the
// given slot with a fresh expiry and the user record is persisted. The
// caller is responsible for delivering the returned code.
func (s *OTPServiceImpl) Issue(ctx context.Context, user *domain.User, slot domain.OTPSlot) (string, error) {
	if s.redisClient != nil {
		throttleKey := fmt.Sprintf("otp:res:%s:%s", slot, user.Email)
		ok, err := s.redisClient.SetNX(ctx, throttleKey, 1, s.config.ResendWindow).Result()
		if err != nil {
			return "", fmt.Errorf("failed to set resend throttle: %w", err)
		}
		if !ok {
			return "", domain.ErrOTPThrottled
		}
	}

	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}

	user.SetSlot(slot, code, time.Now().Add(s.config.TTL))
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}

	s.logger.Info().
		Str("email", user.Email).
		Stringer("slot", slot).
		Msg("otp issued")

	return code, nil
}

// Verify implements domain.OTPService. The slot is cleared on success and
// on expiry detection, never on a plain mismatch, so the user can retry a
// mistyped code within the window.
func (s *OTPServiceImpl) Verify(ctx context.Context, user *domain.User, slot domain.OTPSlot, candidate string) error {
	code, expiry := user.Slot(slot)

	if code == nil {
		return domain.ErrOTPNotFound
	}

	if *code != candidate {
		return domain.ErrOTPInvalid
	}

	if time.Now().After(*expiry) {
		user.ClearSlot(slot)
		if err := s.userRepo.Update(ctx, user); err != nil {
			return fmt.Errorf("failed to clear expired OTP: %w", err)
		}
		return domain.ErrOTPExpired
	}

	user.ClearSlot(slot)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to clear OTP: %w", err)
	}

	return nil
}

// generateCode returns a uniformly random 6-digit code in
// [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
