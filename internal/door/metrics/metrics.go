// Package metrics exposes the prometheus instruments of the door service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aussiebroadwan/vcdoor/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vcdoor"

// Reasons a share record is issued.
const (
	IssueRequested = "requested"
	IssueBlacklist = "blacklist"
	IssueReissue   = "reissue"
	IssueSeed      = "seed"
)

// Verification outcomes.
const (
	VerifyGranted    = "granted"
	VerifyDenied     = "denied"
	VerifyUnreadable = "unreadable"
)

// Metrics groups every instrument. A nil *Metrics records nothing, which
// keeps services usable without a registry.
type Metrics struct {
	registry *prometheus.Registry

	SharesIssued      *prometheus.CounterVec
	SharesValidated   prometheus.Counter
	SharesBlacklisted prometheus.Counter
	DoorsCreated      prometheus.Counter
	Verifications     *prometheus.CounterVec
	ShareCollisions   prometheus.Counter

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers all instruments, plus the Go runtime and process
// collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		SharesIssued: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shares_issued_total",
			Help:      "User shares generated and stored, by reason.",
		}, []string{"reason"}),
		SharesValidated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shares_validated_total",
			Help:      "Shares moved from unvalidated to validated.",
		}),
		SharesBlacklisted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shares_blacklisted_total",
			Help:      "Shares revoked by an administrator or by reissue.",
		}),
		DoorsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "doors_created_total",
			Help:      "Doors created.",
		}),
		Verifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Door reader verification attempts, by result.",
		}, []string{"result"}),
		ShareCollisions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "share_collisions_total",
			Help:      "Generated shares or secrets discarded because the value was already stored.",
		}),

		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ShareIssued(reason string) {
	if m != nil {
		m.SharesIssued.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) ShareValidated() {
	if m != nil {
		m.SharesValidated.Inc()
	}
}

func (m *Metrics) ShareBlacklisted() {
	if m != nil {
		m.SharesBlacklisted.Inc()
	}
}

func (m *Metrics) DoorCreated() {
	if m != nil {
		m.DoorsCreated.Inc()
	}
}

func (m *Metrics) Verification(result string) {
	if m != nil {
		m.Verifications.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) ShareCollision() {
	if m != nil {
		m.ShareCollisions.Inc()
	}
}

// Instrument records request count and latency under route, which should be
// the mux pattern rather than the raw path to keep label cardinality fixed.
func (m *Metrics) Instrument(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &slogx.StatusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)

			m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(sw.Status())).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
