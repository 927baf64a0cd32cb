package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the affiliate ledger.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Ledger metrics
	ReferralsRecorded     *prometheus.CounterVec
	ReferralDuplicates    prometheus.Counter
	ReferralUnattributed  prometheus.Counter
	CommissionCredited    prometheus.Counter
	WithdrawalsRequested  prometheus.Counter
	WithdrawalTransitions *prometheus.CounterVec
	LedgerDriftRepaired   prometheus.Counter

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// NewMetrics creates a Metrics instance registered on its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		ReferralsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_referrals_recorded_total",
				Help: "Referrals credited to an affiliate, by plan",
			},
			[]string{"plan"},
		),
		ReferralDuplicates: factory.NewCounter(prometheus.CounterOpts{
			Name: "affiliate_referral_duplicates_total",
			Help: "Payment events ignored because their transaction was already credited",
		}),
		ReferralUnattributed: factory.NewCounter(prometheus.CounterOpts{
			Name: "affiliate_referral_unattributed_total",
			Help: "Payment events that named no known affiliate",
		}),
		CommissionCredited: factory.NewCounter(prometheus.CounterOpts{
			Name: "affiliate_commission_credited_total",
			Help: "Sum of commission credited to affiliates",
		}),
		WithdrawalsRequested: factory.NewCounter(prometheus.CounterOpts{
			Name: "affiliate_withdrawals_requested_total",
			Help: "Withdrawal requests accepted",
		}),
		WithdrawalTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_withdrawal_transitions_total",
				Help: "Withdrawal status transitions, by target status",
			},
			[]string{"to"},
		),
		LedgerDriftRepaired: factory.NewCounter(prometheus.CounterOpts{
			Name: "affiliate_ledger_drift_repaired_total",
			Help: "Affiliate aggregate rows rewritten by reconciliation",
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "affiliate_balance_cache_hits_total",
			Help: "Balance cache hits",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "affiliate_balance_cache_misses_total",
			Help: "Balance cache misses",
		}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, latency time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(latency.Seconds())
}

// ReferralRecorded counts a credited referral and its commission.
func (m *Metrics) ReferralRecorded(plan string, commission int64) {
	if m == nil {
		return
	}
	m.ReferralsRecorded.WithLabelValues(plan).Inc()
	m.CommissionCredited.Add(float64(commission))
}

// ReferralDuplicate counts a duplicate payment event.
func (m *Metrics) ReferralDuplicate() {
	if m == nil {
		return
	}
	m.ReferralDuplicates.Inc()
}

// ReferralUnattributedEvent counts a payment event with no affiliate.
func (m *Metrics) ReferralUnattributedEvent() {
	if m == nil {
		return
	}
	m.ReferralUnattributed.Inc()
}

// WithdrawalRequested counts an accepted withdrawal request.
func (m *Metrics) WithdrawalRequested() {
	if m == nil {
		return
	}
	m.WithdrawalsRequested.Inc()
}

// WithdrawalTransitioned counts a withdrawal status change.
func (m *Metrics) WithdrawalTransitioned(to string) {
	if m == nil {
		return
	}
	m.WithdrawalTransitions.WithLabelValues(to).Inc()
}

// DriftRepaired counts affiliate rows rewritten by reconciliation.
func (m *Metrics) DriftRepaired(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.LedgerDriftRepaired.Add(float64(n))
}

// CacheHit counts a balance cache hit.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

// CacheMiss counts a balance cache miss.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.CacheMisses.Inc()
}
