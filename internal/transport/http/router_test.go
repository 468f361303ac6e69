package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthCheckPayload(t *testing.T) {
	e := NewRouter([]string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health payload: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status: expected %q, got %q", "healthy", body["status"])
	}
	if body["service"] != "members-api" {
		t.Errorf("service: expected %q, got %q", "members-api", body["service"])
	}
}

func TestCORSConfigCredentials(t *testing.T) {
	cfg := corsConfig([]string{"https://app.redect.com"})
	if !cfg.AllowCredentials {
		t.Error("explicit origin: expected credentials to be allowed")
	}
	if cfg.MaxAge != corsMaxAge {
		t.Errorf("expected MaxAge %d, got %d", corsMaxAge, cfg.MaxAge)
	}

	cfg = corsConfig([]string{"https://app.redect.com", "*"})
	if cfg.AllowCredentials {
		t.Error("wildcard origin: expected credentials to be disabled")
	}
}
