package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestOpenRepositories(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "routes.db"))
		repos, err := openRepositories(context.Background(), " SQLite ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer repos.close()
		if repos.briefings == nil || repos.budgets == nil || repos.pricing == nil {
			t.Fatalf("expected all repositories wired")
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		if _, err := openRepositories(context.Background(), "postgres"); err == nil {
			t.Fatalf("expected error for unknown backend")
		}
	})
}

func TestDurationFromEnv(t *testing.T) {
	t.Setenv("TEST_TIMEOUT", "250ms")
	if got := durationFromEnv("TEST_TIMEOUT", time.Second); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", got)
	}
	t.Setenv("TEST_TIMEOUT", "soon")
	if got := durationFromEnv("TEST_TIMEOUT", time.Second); got != time.Second {
		t.Fatalf("expected fallback, got %v", got)
	}
	t.Setenv("TEST_TIMEOUT", "-1s")
	if got := durationFromEnv("TEST_TIMEOUT", time.Second); got != time.Second {
		t.Fatalf("expected fallback for negative value, got %v", got)
	}
}

func TestPingRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addPingRoutes(r.Group("/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
