package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rail-booking/pkg/utils"

	"go.uber.org/zap"
)

func TestCachePayloadRoundTrip(t *testing.T) {
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	body := []byte(`{"status":true}`)

	payload, err := encodePayload(http.StatusOK, header, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}

	status, gotHeader, gotBody, ok := decodePayload(payload)
	if !ok {
		t.Fatal("decodePayload rejected its own encoding")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if gotHeader.Get("Content-Type") != "application/json" {
		t.Errorf("content type = %q", gotHeader.Get("Content-Type"))
	}
	if string(gotBody) != string(body) {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	for _, bs := range [][]byte{nil, {1, 2, 3}, []byte("short")} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Errorf("decodePayload accepted %v", bs)
		}
	}
}

func TestCacheDisabledIsPassThrough(t *testing.T) {
	mw := Cache(utils.CacheConfig{Enabled: false}, nil, zap.NewNop())

	called := false
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stations", nil))

	if !called {
		t.Error("next handler was not called")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestCacheKeyIncludesQuery(t *testing.T) {
	a := cacheKey("railbooking", httptest.NewRequest(http.MethodGet, "/api/search?from=NYP&to=BOS", nil))
	b := cacheKey("railbooking", httptest.NewRequest(http.MethodGet, "/api/search?from=NYP&to=CHI", nil))
	if a == b {
		t.Error("different queries produced the same cache key")
	}
}
