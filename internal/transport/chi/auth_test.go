package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func authHandler(apiKeys []string) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return APIKeyMiddleware(apiKeys)(inner)
}

func TestAPIKeyMiddleware_DisabledWithoutKeys(t *testing.T) {
	h := authHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/search", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 when auth is disabled", w.Code)
	}
}

func TestAPIKeyMiddleware_RejectsMissingKey(t *testing.T) {
	h := authHandler([]string{"secret"})

	req := httptest.NewRequest(http.MethodPost, "/v1/search", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without X-API-Key", w.Code)
	}
}

func TestAPIKeyMiddleware_RejectsInvalidKey(t *testing.T) {
	h := authHandler([]string{"secret"})

	req := httptest.NewRequest(http.MethodPost, "/v1/search", nil)
	req.Header.Set("X-API-Key", "wrong")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for a wrong key", w.Code)
	}
}

func TestAPIKeyMiddleware_AcceptsValidKey(t *testing.T) {
	h := authHandler([]string{"secret", "other"})

	req := httptest.NewRequest(http.MethodPost, "/v1/search", nil)
	req.Header.Set("X-API-Key", "other")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for a valid key", w.Code)
	}
}

func TestAPIKeyMiddleware_ExemptPaths(t *testing.T) {
	h := authHandler([]string{"secret"})

	for _, path := range []string{"/healthz", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200 without a key", path, w.Code)
		}
	}
}
