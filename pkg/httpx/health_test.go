package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeChecker struct {
	err error
}

func (f fakeChecker) Ping(ctx context.Context) error { return f.err }

func TestHealthHandler(t *testing.T) {
	t.Run("returns 200 when the store is reachable", func(t *testing.T) {
		h := HealthHandler(HealthChecks{Store: fakeChecker{}})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error decoding body: %v", err)
		}
		if body["status"] != "ok" || body["store"] != "ok" {
			t.Fatalf("expected ok/ok, got %v", body)
		}
	})

	t.Run("returns 503 when the store ping fails", func(t *testing.T) {
		h := HealthHandler(HealthChecks{Store: fakeChecker{err: errors.New("connection refused")}})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected status 503, got %d", rec.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error decoding body: %v", err)
		}
		if body["status"] != "degraded" || body["store"] != "unreachable" {
			t.Fatalf("expected degraded/unreachable, got %v", body)
		}
	})
}
