package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sudhar3084/sriram-cab-service/domain"
	"github.com/sudhar3084/sriram-cab-service/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc   domain.AuthService
	exposeOTP bool
}

// NewAuthHandlers creates new auth handlers. exposeOTP echoes issued codes
// in API responses for demo/testing setups.
func NewAuthHandlers(authSvc domain.AuthService, exposeOTP bool) *AuthHandlers {
	return &AuthHandlers{
		authSvc:   authSvc,
		exposeOTP: exposeOTP,
	}
}

// SignupRequest represents manual registration request
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=4"`
}

// GoogleSignupRequest represents Google sign-in request
type GoogleSignupRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// SendOTPRequest represents an OTP send request
type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest represents an OTP login request
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest represents a password reset request
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// LoginRequest represents legacy email/password login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup handles POST /api/auth/signup. Registration does not log the
// user in.
func (h *AuthHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.authSvc.Signup(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered! Please login."})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully!",
		"user":    user.Public(),
	})
}

// GoogleSignup handles POST /api/auth/google-signup
func (h *AuthHandlers) GoogleSignup(c *gin.Context) {
	var req GoogleSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.authSvc.GoogleAuth(c.Request.Context(), req.Credential)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Google authentication failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Google sign-in successful!",
		"token":   result.Token,
		"user":    result.User.Public(),
	})
}

// SendOTP handles POST /api/auth/send-otp
func (h *AuthHandlers) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	code, err := h.authSvc.SendLoginOTP(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "No account found with this email. Please sign up first."})
		case errors.Is(err, domain.ErrOTPThrottled):
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Please wait before requesting another OTP."})
		default:
			serverError(c, err)
		}
		return
	}

	resp := gin.H{"message": "OTP sent successfully!"}
	if h.exposeOTP {
		resp["demo_otp"] = code
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyOTP handles POST /api/auth/verify-otp
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.authSvc.VerifyLoginOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		case errors.Is(err, domain.ErrOTPNotFound), errors.Is(err, domain.ErrOTPInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid OTP. Please try again."})
		case errors.Is(err, domain.ErrOTPExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "OTP has expired. Please request a new one."})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"token":   result.Token,
		"user":    result.User.Public(),
	})
}

// ForgotPassword handles POST /api/auth/forgot-password
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	code, err := h.authSvc.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "No account found with this email."})
		case errors.Is(err, domain.ErrOTPThrottled):
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Please wait before requesting another OTP."})
		default:
			serverError(c, err)
		}
		return
	}

	resp := gin.H{"message": "Password reset OTP sent!"}
	if h.exposeOTP {
		resp["demo_otp"] = code
	}
	c.JSON(http.StatusOK, resp)
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	err := h.authSvc.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 4 characters."})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		case errors.Is(err, domain.ErrOTPNotFound), errors.Is(err, domain.ErrOTPInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid reset code. Please try again."})
		case errors.Is(err, domain.ErrOTPExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Reset code has expired. Please request a new one."})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully! You can now login."})
}

// Login handles POST /api/auth/login. Unknown email and wrong password get
// the identical response.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password!"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"token":   result.Token,
		"user":    result.User.Public(),
	})
}

// Me handles GET /api/auth/me (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}

func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error: " + err.Error()})
}
