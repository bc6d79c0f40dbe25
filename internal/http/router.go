package httpx

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sudhar3084/sriram-cab-service/internal/http/handlers"
)

// BuildRouter wires all routes. Non-API paths fall back to the static
// single-page frontend.
func BuildRouter(ah *handlers.AuthHandlers, bh *handlers.BookingHandlers, authMW gin.HandlerFunc, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/signup", ah.Signup)
	auth.POST("/google-signup", ah.GoogleSignup)
	auth.POST("/send-otp", ah.SendOTP)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.POST("/login", ah.Login)
	auth.GET("/me", authMW, ah.Me)

	bookings := r.Group("/api/bookings").Use(authMW)
	bookings.POST("", bh.Create)
	bookings.GET("", bh.List)

	r.NoRoute(spaFallback(staticDir))

	return r
}

// spaFallback serves files from staticDir and falls back to index.html for
// client-side routes. API paths get a JSON 404 instead.
func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "Route not found."})
			return
		}

		file := filepath.Join(staticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}

		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(index)
	}
}
