package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sudhar3084/sriram-cab-service/domain"
	"github.com/sudhar3084/sriram-cab-service/internal/config"
	"github.com/sudhar3084/sriram-cab-service/internal/infrastructure/auth"
	"github.com/sudhar3084/sriram-cab-service/internal/infrastructure/database"
	"github.com/sudhar3084/sriram-cab-service/internal/infrastructure/notifications"
	"github.com/sudhar3084/sriram-cab-service/internal/infrastructure/repositories"
	"github.com/sudhar3084/sriram-cab-service/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger zerolog.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	UserRepo    domain.UserRepository
	BookingRepo domain.BookingRepository

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	GoogleSvc   domain.GoogleVerifier
	Mailer      domain.Mailer
	OTPSvc      domain.OTPService
	AuthSvc     domain.AuthService
	BookingSvc  domain.BookingService
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Container, error) {
	container := &Container{Config: cfg, Logger: logger}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(ctx); err != nil {
		return nil, err
	}

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db := database.Open(c.Config.DatabaseDSN, c.Logger)
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis(ctx context.Context) error {
	client, err := database.NewRedis(ctx, c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	if client == nil {
		c.Logger.Info().Msg("redis not configured, otp resend throttling disabled")
	}
	c.RedisClient = client
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.BookingRepo = repositories.NewBookingRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.TokenTTL)
	c.GoogleSvc = auth.NewGoogleVerifier(c.Config.GoogleClientID)
	c.Mailer = notifications.NewMailService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
		c.Logger,
	)

	otpConfig := services.OTPConfig{
		TTL:          c.Config.OTPTTL,
		ResendWindow: c.Config.OTPResendWindow,
	}
	c.OTPSvc = services.NewOTPService(c.UserRepo, c.RedisClient, otpConfig, c.Logger)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		c.GoogleSvc,
		c.Mailer,
		c.Logger,
	)
	c.BookingSvc = services.NewBookingService(c.BookingRepo)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
