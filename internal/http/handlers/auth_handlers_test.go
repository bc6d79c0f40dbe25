package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sudhar3084/sriram-cab-service/domain"
	"github.com/sudhar3084/sriram-cab-service/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performAuthRequest(t *testing.T, h *AuthHandlers, handler gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func TestAuthHandlers_Signup(t *testing.T) {
	tests := []struct {
		name            string
		body            interface{}
		setupMocks      func(m *mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "successful signup",
			body: gin.H{"name": "Asha", "email": "asha@example.com", "password": "pw1234"},
			setupMocks: func(m *mocks.MockAuthService) {
				m.SignupFunc = func(ctx context.Context, name, email, phone, password string) (*domain.User, error) {
					return &domain.User{ID: 1, Name: name, Email: email}, nil
				}
			},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "Account created successfully!",
		},
		{
			name: "duplicate email",
			body: gin.H{"name": "Asha", "email": "asha@example.com", "password": "pw1234"},
			setupMocks: func(m *mocks.MockAuthService) {
				m.SignupFunc = func(ctx context.Context, name, email, phone, password string) (*domain.User, error) {
					return nil, domain.ErrEmailTaken
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Email already registered! Please login.",
		},
		{
			name:           "missing password",
			body:           gin.H{"name": "Asha", "email": "asha@example.com"},
			setupMocks:     func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "password below minimum length",
			body:           gin.H{"name": "Asha", "email": "asha@example.com", "password": "ab"},
			setupMocks:     func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid email format",
			body:           gin.H{"name": "Asha", "email": "not-an-email", "password": "pw1234"},
			setupMocks:     func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "internal failure",
			body: gin.H{"name": "Asha", "email": "asha@example.com", "password": "pw1234"},
			setupMocks: func(m *mocks.MockAuthService) {
				m.SignupFunc = func(ctx context.Context, name, email, phone, password string) (*domain.User, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			h := NewAuthHandlers(authSvc, true)

			w := performAuthRequest(t, h, h.Signup, tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedMessage != "" {
				body := decodeBody(t, w)
				if body["message"] != tt.expectedMessage {
					t.Errorf("expected message %q, got %q", tt.expectedMessage, body["message"])
				}
			}
		})
	}
}

func TestAuthHandlers_Signup_NoToken(t *testing.T) {
	h := NewAuthHandlers(mocks.NewMockAuthService(), true)

	w := performAuthRequest(t, h, h.Signup, gin.H{"name": "Asha", "email": "asha@example.com", "password": "pw1234"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if _, ok := body["token"]; ok {
		t.Error("registration must not log the user in")
	}
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatal("expected a user object in the response")
	}
	for _, forbidden := range []string{"password", "passwordHash", "otp", "resetOtp"} {
		if _, ok := user[forbidden]; ok {
			t.Errorf("response leaks %q", forbidden)
		}
	}
}

func TestAuthHandlers_GoogleSignup(t *testing.T) {
	tests := []struct {
		name            string
		body            interface{}
		setupMocks      func(m *mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "successful sign-in",
			body: gin.H{"credential": "valid-credential"},
			setupMocks: func(m *mocks.MockAuthService) {
				m.GoogleAuthFunc = func(ctx context.Context, credential string) (*domain.AuthResult, error) {
					return &domain.AuthResult{User: &domain.User{ID: 1, Email: "asha@example.com"}, Token: "token_1"}, nil
				}
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Google sign-in successful!",
		},
		{
			name:            "rejected credential",
			body:            gin.H{"credential": "bad-credential"},
			setupMocks:      func(m *mocks.MockAuthService) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Google authentication failed",
		},
		{
			name:           "missing credential",
			body:           gin.H{},
			setupMocks:     func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			h := NewAuthHandlers(authSvc, true)

			w := performAuthRequest(t, h, h.GoogleSignup, tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedMessage != "" {
				body := decodeBody(t, w)
				if body["message"] != tt.expectedMessage {
					t.Errorf("expected message %q, got %q", tt.expectedMessage, body["message"])
				}
			}
		})
	}
}

func TestAuthHandlers_SendOTP(t *testing.T) {
	tests := []struct {
		name            string
		body            interface{}
		setupMocks      func(m *mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "otp sent",
			body:            gin.H{"email": "asha@example.com"},
			setupMocks:      func(m *mocks.MockAuthService) {},
			expectedStatus:  http.StatusOK,
			expectedMessage: "OTP sent successfully!",
		},
		{
			name: "unknown email",
			body: gin.H{"email": "nobody@example.com"},
			setupMocks: func(m *mocks.MockAuthService) {
				m.SendLoginOTPFunc = func(ctx context.Context, email string) (string, error) {
					return "", domain.ErrUserNotFound
				}
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "No account found with this email. Please sign up first.",
		},
		{
			name: "throttled",
			body: gin.H{"email": "asha@example.com"},
			setupMocks: func(m *mocks.MockAuthService) {
				m.SendLoginOTPFunc = func(ctx context.Context, email string) (string, error) {
					return "", domain.ErrOTPThrottled
				}
			},
			expectedStatus:  http.StatusTooManyRequests,
			expectedMessage: "Please wait before requesting another OTP.",
		},
		{
			name:           "missing email",
			body:           gin.H{},
			setupMocks:     func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			h := NewAuthHandlers(authSvc, true)

			w := performAuthRequest(t, h, h.SendOTP, tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedMessage != "" {
				body := decodeBody(t, w)
				if body["message"] != tt.expectedMessage {
					t.Errorf("expected message %q, got %q", tt.expectedMessage, body["message"])
				}
			}
		})
	}
}

func TestAuthHandlers_SendOTP_DemoExposure(t *testing.T) {
	t.Run("exposed", func(t *testing.T) {
		h := NewAuthHandlers(mocks.NewMockAuthService(), true)

		w := performAuthRequest(t, h, h.SendOTP, gin.H{"email": "asha@example.com"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}

		body := decodeBody(t, w)
		if body["demo_otp"] != "123456" {
			t.Errorf("expected the issued code in the response, got %v", body["demo_otp"])
		}
	})

	t.Run("hidden", func(t *testing.T) {
		h := NewAuthHandlers(mocks.NewMockAuthService(), false)

		w := performAuthRequest(t, h, h.SendOTP, gin.H{"email": "asha@example.com"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}

		body := decodeBody(t, w)
		if _, ok := body["demo_otp"]; ok {
			t.Error("the code must not be exposed when disabled")
		}
	})
}

func TestAuthHandlers_VerifyOTP(t *testing.T) {
	tests := []struct {
		name            string
		body            interface{}
		setupMocks      func(m *mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "successful login",
			body:            gin.H{"email": "asha@example.com", "otp": "123456"},
			setupMocks:      func(m *mocks.MockAuthService) {},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Login successful!",
		},
		{
			name: "unknown email",
			body: gin.H{"email": "nobody@example.com", "otp": "123456"},
			setupMocks: func(m *mocks.MockAuthService) {
				m.VerifyLoginOTPFunc = func(ctx context.Context, email, otp string) (*domain.AuthResult, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "User not found.",
		},
		{
			name:            "wrong code",
			body:            gin.H{"email": "asha@example.com", "otp": "000000"},
			setupMocks:      func(m *mocks.MockAuthService) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid OTP. Please try again.",
		},
		{
			name: "no code pending",
			body: gin.H{"email": "asha@example.com", "otp": "123456"},
			setupMocks: func(m *mocks.MockAuthService) {
				m.VerifyLoginOTPFunc = func(ctx context.Context, email, otp string) (*domain.AuthResult, error) {
					return nil, domain.ErrOTPNotFound
				}
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid OTP. Please try again.",
		},
		{
			name: "expired code",
			body: gin.H{"email": "asha@example.com", "otp": "123456"},
			setupMocks: func(m *mocks.MockAuthService) {
				m.VerifyLoginOTPFunc = func(ctx context.Context, email, otp string) (*domain.AuthResult, error) {
					return nil, domain.ErrOTPExpired
				}
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "OTP has expired. Please request a new one.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			h := NewAuthHandlers(authSvc, true)

			w := performAuthRequest(t, h, h.VerifyOTP, tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if body["message"] != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, body["message"])
			}
			if tt.expectedStatus == http.StatusOK && body["token"] == "" {
				t.Error("expected a token on success")
			}
		})
	}
}

func TestAuthHandlers_ForgotPassword(t *testing.T) {
	tests := []struct {
		name            string
		setupMocks      func(m *mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "reset code sent",
			setupMocks:      func(m *mocks.MockAuthService) {},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Password reset OTP sent!",
		},
		{
			name: "unknown email",
			setupMocks: func(m *mocks.MockAuthService) {
				m.ForgotPasswordFunc = func(ctx context.Context, email string) (string, error) {
					return "", domain.ErrUserNotFound
				}
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "No account found with this email.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			h := NewAuthHandlers(authSvc, true)

			w := performAuthRequest(t, h, h.ForgotPassword, gin.H{"email": "asha@example.com"})

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if body["message"] != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, body["message"])
			}
		})
	}
}

func TestAuthHandlers_ResetPassword(t *testing.T) {
	tests := []struct {
		name            string
		setupMocks      func(m *mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "successful reset",
			setupMocks:      func(m *mocks.MockAuthService) {},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Password reset successfully! You can now login.",
		},
		{
			name: "password too short",
			setupMocks: func(m *mocks.MockAuthService) {
				m.ResetPasswordFunc = func(ctx context.Context, email, otp, newPassword string) error {
					return domain.ErrPasswordTooShort
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Password must be at least 4 characters.",
		},
		{
			name: "unknown email",
			setupMocks: func(m *mocks.MockAuthService) {
				m.ResetPasswordFunc = func(ctx context.Context, email, otp, newPassword string) error {
					return domain.ErrUserNotFound
				}
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "User not found.",
		},
		{
			name: "wrong reset code",
			setupMocks: func(m *mocks.MockAuthService) {
				m.ResetPasswordFunc = func(ctx context.Context, email, otp, newPassword string) error {
					return domain.ErrOTPInvalid
				}
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid reset code. Please try again.",
		},
		{
			name: "expired reset code",
			setupMocks: func(m *mocks.MockAuthService) {
				m.ResetPasswordFunc = func(ctx context.Context, email, otp, newPassword string) error {
					return domain.ErrOTPExpired
				}
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Reset code has expired. Please request a new one.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			h := NewAuthHandlers(authSvc, true)

			w := performAuthRequest(t, h, h.ResetPassword, gin.H{
				"email":       "asha@example.com",
				"otp":         "123456",
				"newPassword": "newpass",
			})

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if body["message"] != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, body["message"])
			}
		})
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	tests := []struct {
		name            string
		setupMocks      func(m *mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "successful login",
			setupMocks:      func(m *mocks.MockAuthService) {},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Login successful!",
		},
		{
			name: "bad credentials",
			setupMocks: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return nil, domain.ErrInvalidCredentials
				}
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid email or password!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			h := NewAuthHandlers(authSvc, true)

			w := performAuthRequest(t, h, h.Login, gin.H{"email": "asha@example.com", "password": "pw1234"})

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if body["message"] != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, body["message"])
			}
		})
	}
}
