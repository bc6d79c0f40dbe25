package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sudhar3084/sriram-cab-service/internal/http/handlers"
	"github.com/sudhar3084/sriram-cab-service/internal/http/middleware"
	"github.com/sudhar3084/sriram-cab-service/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func buildTestRouter(t *testing.T, staticDir string) *gin.Engine {
	t.Helper()

	ah := handlers.NewAuthHandlers(mocks.NewMockAuthService(), true)
	bh := handlers.NewBookingHandlers(mocks.NewMockBookingService())
	authMW := middleware.AuthMiddleware(mocks.NewMockTokenService(), mocks.NewMockUserRepository())
	return BuildRouter(ah, bh, authMW, staticDir)
}

func TestBuildRouter_Health(t *testing.T) {
	r := buildTestRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestBuildRouter_ProtectedRoutesRequireAuth(t *testing.T) {
	r := buildTestRouter(t, t.TempDir())

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/bookings"},
		{http.MethodGet, "/api/bookings"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", w.Code)
			}
		})
	}
}

func TestBuildRouter_UnknownAPIRoute(t *testing.T) {
	r := buildTestRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected a JSON body: %v", err)
	}
	if body["message"] != "Route not found." {
		t.Errorf("unexpected message %q", body["message"])
	}
}

func TestBuildRouter_SPAFallback(t *testing.T) {
	staticDir := t.TempDir()
	index := []byte("<html>app</html>")
	if err := os.WriteFile(filepath.Join(staticDir, "index.html"), index, 0o644); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}
	asset := []byte("body{}")
	if err := os.WriteFile(filepath.Join(staticDir, "app.css"), asset, 0o644); err != nil {
		t.Fatalf("failed to write asset: %v", err)
	}

	r := buildTestRouter(t, staticDir)

	t.Run("existing file is served", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app.css", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		if w.Body.String() != string(asset) {
			t.Errorf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("client-side route falls back to index", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/history", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		if w.Body.String() != string(index) {
			t.Errorf("expected index.html, got %q", w.Body.String())
		}
	})

	t.Run("no static dir means a plain 404", func(t *testing.T) {
		empty := buildTestRouter(t, t.TempDir())

		w := httptest.NewRecorder()
		empty.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anything", nil))

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})
}
