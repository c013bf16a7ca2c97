package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/pkg/logger"
)

type observation struct {
	method, path, status string
}

type recordingMetrics struct {
	seen []observation
}

func (m *recordingMetrics) ObserveHTTP(method, path, status string, _ float64) {
	m.seen = append(m.seen, observation{method, path, status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := &recordingMetrics{}

	r := mux.NewRouter()
	r.Use(Metrics(m))
	r.HandleFunc("/venues/{venueId}/slots", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/venues/42/slots", nil))

	require.Len(t, m.seen, 1)
	assert.Equal(t, observation{"GET", "/venues/{venueId}/slots", "418"}, m.seen[0])
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, given)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, given, seen)

	// не-uuid заменяется
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "<script>")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, "<script>", seen)
}

func TestRateLimiter_Passthrough(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name    string
		limiter *RateLimiter
	}{
		{"nil limiter", nil},
		{"disabled", NewRateLimiter(nil, RateLimitOptions{Enabled: false}, logger.NewDiscard())},
		{"no client", NewRateLimiter(nil, RateLimitOptions{Enabled: true, Capacity: 1}, logger.NewDiscard())},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := tt.limiter.Middleware(ok)
			for i := 0; i < 5; i++ {
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", nil))
				assert.Equal(t, http.StatusOK, rec.Code)
			}
		})
	}
}

func TestRateLimiter_Key(t *testing.T) {
	t.Parallel()

	l := NewRateLimiter(nil, RateLimitOptions{Prefix: "rl", TTL: time.Minute}, logger.NewDiscard())

	req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "rl:ip:10.0.0.1", l.key(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "rl:ip:203.0.113.9", l.key(req))

	req = req.WithContext(WithSession(req.Context(), domain.Session{UserID: 12, Role: domain.RoleUser}))
	assert.Equal(t, "rl:user:12", l.key(req))
}
