package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sudhar3084/sriram-cab-service/internal/infrastructure/repositories"
)

const connectRetryDelay = 5 * time.Second

// Open connects to Postgres, retrying indefinitely at a fixed delay until
// the database accepts the connection.
func Open(dsn string, logger zerolog.Logger) *gorm.DB {
	for {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			logger.Info().Msg("database connected")
			return db
		}
		logger.Error().Err(err).
			Dur("retry_in", connectRetryDelay).
			Msg("database connection failed")
		time.Sleep(connectRetryDelay)
	}
}

// AutoMigrate creates or updates the users and bookings tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}, &repositories.DBBooking{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
