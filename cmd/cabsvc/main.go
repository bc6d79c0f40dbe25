package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/sudhar3084/sriram-cab-service/internal/app"
	"github.com/sudhar3084/sriram-cab-service/internal/config"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	if err := app.Run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("app")
	}
}
