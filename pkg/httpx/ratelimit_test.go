package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func do(h http.Handler, remote string, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	require.Equal(t, "192.168.1.1", ClientIP(req))

	req.Header.Set("X-Real-IP", "203.0.113.2")
	require.Equal(t, "203.0.113.2", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
	require.Equal(t, "203.0.113.1", ClientIP(req))
}

func TestFormFieldAndJoinKeys(t *testing.T) {
	form := url.Values{"username": {"bob"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "10.0.0.1:1"

	require.Equal(t, "10.0.0.1|bob", JoinKeys(ClientIP, FormField("username"))(req))
	// The handler still sees the form after the key was extracted.
	require.Equal(t, "bob", req.PostFormValue("username"))

	empty := httptest.NewRequest(http.MethodGet, "/", nil)
	empty.RemoteAddr = "10.0.0.1:1"
	require.Equal(t, "10.0.0.1", JoinKeys(ClientIP, FormField("username"))(empty))
}

func TestRateLimit_BlocksOverLimit(t *testing.T) {
	h := RateLimitByIP(Limit{Requests: 3, Window: time.Minute, Burst: 3})(okHandler)

	for i := range 3 {
		require.Equal(t, http.StatusOK, do(h, "192.168.1.1:1", "/").Code, "request %d", i+1)
	}

	rec := do(h, "192.168.1.1:1", "/")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "20", rec.Header().Get("Retry-After"))
	require.Contains(t, rec.Body.String(), "rate_limit_exceeded")

	// Other clients have their own bucket.
	require.Equal(t, http.StatusOK, do(h, "192.168.1.2:1", "/").Code)
}

func TestRateLimit_EmptyKeyBypasses(t *testing.T) {
	h := RateLimit(Limit{Requests: 1, Window: time.Minute, Burst: 1}, func(*http.Request) string { return "" })(okHandler)
	for range 3 {
		require.Equal(t, http.StatusOK, do(h, "1.1.1.1:1", "/").Code)
	}
}

func TestRateLimitByIPAndField(t *testing.T) {
	h := RateLimitByIPAndField(Limit{Requests: 2, Window: time.Minute, Burst: 2}, "username")(okHandler)

	require.Equal(t, http.StatusOK, do(h, "1.1.1.1:1", "/?username=alice").Code)
	require.Equal(t, http.StatusOK, do(h, "1.1.1.1:1", "/?username=alice").Code)
	require.Equal(t, http.StatusTooManyRequests, do(h, "1.1.1.1:1", "/?username=alice").Code)
	require.Equal(t, http.StatusOK, do(h, "1.1.1.1:1", "/?username=bob").Code)
}

func TestLimiter_EvictsIdleBuckets(t *testing.T) {
	l := NewLimiter(Limit{Requests: 1, Window: time.Minute, Burst: 1})
	now := time.Unix(1700000000, 0)
	l.now = func() time.Time { return now }

	ok, _ := l.Allow("a")
	require.True(t, ok)
	ok, wait := l.Allow("a")
	require.False(t, ok)
	require.Equal(t, time.Minute, wait)

	now = now.Add(10 * time.Minute)
	ok, _ = l.Allow("b")
	require.True(t, ok)
	require.Equal(t, 1, l.Len())
}

func TestLimitFromEnv(t *testing.T) {
	def := Limit{Requests: 10, Window: time.Minute, Burst: 10}
	require.Equal(t, def, LimitFromEnv("TEST", def))

	t.Setenv("RATELIMIT_TEST_REQUESTS", "50")
	t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "120")
	t.Setenv("RATELIMIT_TEST_BURST", "-1")
	got := LimitFromEnv("TEST", def)
	require.Equal(t, 50, got.Requests)
	require.Equal(t, 2*time.Minute, got.Window)
	require.Equal(t, 10, got.Burst)
}

func TestProfilesOrdered(t *testing.T) {
	require.Less(t, StrictLimit.Requests, ModerateLimit.Requests)
	require.Less(t, ModerateLimit.Requests, PublicLimit.Requests)
}
