package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sudhar3084/sriram-cab-service/internal/config"
	httpx "github.com/sudhar3084/sriram-cab-service/internal/http"
	"github.com/sudhar3084/sriram-cab-service/internal/http/handlers"
	"github.com/sudhar3084/sriram-cab-service/internal/http/middleware"
)

// Run wires the application together and serves HTTP until the listener
// fails.
func Run(cfg *config.Config, logger zerolog.Logger) error {
	gin.SetMode(cfg.GinMode)

	c, err := NewContainer(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	authH := handlers.NewAuthHandlers(c.AuthSvc, cfg.OTPDemoExpose)
	bookingH := handlers.NewBookingHandlers(c.BookingSvc)
	authMW := middleware.AuthMiddleware(c.TokenSvc, c.UserRepo)

	r := httpx.BuildRouter(authH, bookingH, authMW, cfg.StaticDir)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("cab service listening")
	return http.ListenAndServe(addr, r)
}
