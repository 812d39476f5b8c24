package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestLimitMiddleware(t *testing.T) {
	limiter := NewIPRateLimiter(0.0001, 2)
	h := limiter.LimitMiddleware(ok)

	call := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1002"), "ports share one bucket")
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1000"))
}

func TestCORS(t *testing.T) {
	h := CORS(ok)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccessLog_RequestID(t *testing.T) {
	var seen string
	h := AccessLog(zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, incoming, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", seen)
}
