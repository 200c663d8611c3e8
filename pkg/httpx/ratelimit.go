package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/vcdoor/pkg/slogx"
	"golang.org/x/time/rate"
)

// Limit is a token bucket refilled with Requests tokens every Window.
type Limit struct {
	Requests int
	Window   time.Duration
	Burst    int
}

func (l Limit) perSecond() rate.Limit {
	if l.Window <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(l.Requests) / l.Window.Seconds())
}

// Profiles for the door API. Each can be overridden with
// RATELIMIT_<NAME>_REQUESTS, RATELIMIT_<NAME>_WINDOW_SEC and
// RATELIMIT_<NAME>_BURST.
var (
	// Password and bootstrap endpoints.
	StrictLimit = LimitFromEnv("STRICT", Limit{Requests: 5, Window: time.Minute, Burst: 5})

	// Key issuance and door secret endpoints.
	ModerateLimit = LimitFromEnv("MODERATE", Limit{Requests: 30, Window: time.Minute, Burst: 30})

	// Read-only endpoints.
	PublicLimit = LimitFromEnv("PUBLIC", Limit{Requests: 600, Window: time.Minute, Burst: 600})
)

// LimitFromEnv overlays positive integers found in the environment on def.
func LimitFromEnv(name string, def Limit) Limit {
	lookup := func(field string) (int, bool) {
		v, err := strconv.Atoi(os.Getenv("RATELIMIT_" + name + "_" + field))
		return v, err == nil && v > 0
	}
	if n, ok := lookup("REQUESTS"); ok {
		def.Requests = n
	}
	if n, ok := lookup("WINDOW_SEC"); ok {
		def.Window = time.Duration(n) * time.Second
	}
	if n, ok := lookup("BURST"); ok {
		def.Burst = n
	}
	return def
}

// KeyFunc groups requests into buckets. An empty key bypasses the limiter.
type KeyFunc func(*http.Request) string

// ClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// socket address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// FormField keys on a form value. Parsing consumes a urlencoded body but the
// values stay available through r.Form for the handler.
func FormField(name string) KeyFunc {
	return func(r *http.Request) string {
		if err := r.ParseForm(); err != nil {
			return ""
		}
		return r.FormValue(name)
	}
}

func AuthenticatedUser(r *http.Request) string { return UserName(r.Context()) }

// JoinKeys concatenates the non-empty keys produced by fns.
func JoinKeys(fns ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(fns))
		for _, fn := range fns {
			if k := fn(r); k != "" {
				parts = append(parts, k)
			}
		}
		return strings.Join(parts, "|")
	}
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per key and evicts buckets idle for longer
// than idleTTL.
type Limiter struct {
	limit   Limit
	idleTTL time.Duration

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

func NewLimiter(l Limit) *Limiter {
	ttl := max(l.Window*2, time.Minute)
	return &Limiter{
		limit:   l,
		idleTTL: ttl,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow takes a token for key. When it refuses, the returned duration is how
// long until a token is available.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.idleTTL {
		for k, b := range l.buckets {
			if now.Sub(b.lastSeen) > l.idleTTL {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.limit.perSecond(), l.limit.Burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	res := b.lim.ReserveN(now, 1)
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Len reports how many buckets are tracked.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// RateLimit rejects requests with 429 once their key runs out of tokens.
func RateLimit(l Limit, key KeyFunc) Middleware {
	lim := NewLimiter(l)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			ok, wait := lim.Allow(k)
			if !ok {
				secs := max(int(wait.Round(time.Second)/time.Second), 1)
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				slogx.FromContext(r.Context()).Warn("rate limit exceeded", "key", k, "retry_after", secs)
				WriteError(w, http.StatusTooManyRequests, "rate_limit_exceeded", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RateLimitByIP(l Limit) Middleware { return RateLimit(l, ClientIP) }

// RateLimitByUser keys on the token subject and falls back to the client IP.
func RateLimitByUser(l Limit) Middleware {
	return RateLimit(l, func(r *http.Request) string {
		if u := AuthenticatedUser(r); u != "" {
			return "u:" + u
		}
		return "ip:" + ClientIP(r)
	})
}

// RateLimitByIPAndField keys on client IP plus a form field such as the
// login name.
func RateLimitByIPAndField(l Limit, field string) Middleware {
	return RateLimit(l, JoinKeys(ClientIP, FormField(field)))
}
