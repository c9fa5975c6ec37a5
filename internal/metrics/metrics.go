package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds every service metric. All methods are safe on a nil receiver.
type Collector struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	httpErrors     *prometheus.CounterVec
	mints          *prometheus.CounterVec
	cardsMinted    *prometheus.CounterVec
	validations    *prometheus.CounterVec
	facetFailures  *prometheus.CounterVec
	admissions     *prometheus.CounterVec
	feeLookups     *prometheus.CounterVec
	receiptLatency prometheus.Histogram
}

var (
	defaultOnce      sync.Once
	defaultCollector *Collector
)

// Default returns the process-wide collector registered with the default registry.
func Default() *Collector {
	defaultOnce.Do(func() {
		defaultCollector = NewCollector(prometheus.DefaultRegisterer)
	})
	return defaultCollector
}

// NewCollector creates a collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "univoucher_outbound_http_requests_total",
			Help: "Outbound HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "univoucher_outbound_http_request_duration_seconds",
			Help:    "Outbound HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		httpErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "univoucher_outbound_http_errors_total",
			Help: "Outbound HTTP requests that failed or returned status >= 400.",
		}, []string{"method", "path"}),
		mints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "univoucher_mints_total",
			Help: "Mint submissions by outcome (success, partial, pending, reverted, failed).",
		}, []string{"outcome", "method"}),
		cardsMinted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "univoucher_cards_minted_total",
			Help: "Cards created on-chain by chain id.",
		}, []string{"chain_id"}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "univoucher_card_validations_total",
			Help: "Card validations by outcome (valid, invalid, format_error, error).",
		}, []string{"outcome"}),
		facetFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "univoucher_card_validation_facet_failures_total",
			Help: "Failed validation facets by facet name.",
		}, []string{"facet"}),
		admissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "univoucher_card_admissions_total",
			Help: "Admission decisions by source and result.",
		}, []string{"source", "result"}),
		feeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "univoucher_fee_lookups_total",
			Help: "Fee oracle lookups by result (hit, miss, error).",
		}, []string{"result"}),
		receiptLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "univoucher_receipt_wait_seconds",
			Help:    "Time from broadcast to mined receipt.",
			Buckets: []float64{2, 5, 10, 20, 40, 80, 160, 300},
		}),
	}

	if reg != nil {
		reg.MustRegister(
			c.httpRequests,
			c.httpDuration,
			c.httpErrors,
			c.mints,
			c.cardsMinted,
			c.validations,
			c.facetFailures,
			c.admissions,
			c.feeLookups,
			c.receiptLatency,
		)
	}
	return c
}

// RecordRequestDuration implements the HTTP client's MetricsCollector.
func (c *Collector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	if c == nil {
		return
	}
	c.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (c *Collector) RecordRequestCount(method, path string, statusCode int) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordRequestError(method, path string) {
	if c == nil {
		return
	}
	c.httpErrors.WithLabelValues(method, path).Inc()
}

func (c *Collector) ObserveMint(outcome, method string, chainID int64, cards int) {
	if c == nil {
		return
	}
	c.mints.WithLabelValues(outcome, method).Inc()
	if cards > 0 {
		c.cardsMinted.WithLabelValues(strconv.FormatInt(chainID, 10)).Add(float64(cards))
	}
}

func (c *Collector) ObserveReceiptWait(d time.Duration) {
	if c == nil {
		return
	}
	c.receiptLatency.Observe(d.Seconds())
}

func (c *Collector) ObserveValidation(outcome string, failedFacets []string) {
	if c == nil {
		return
	}
	c.validations.WithLabelValues(outcome).Inc()
	for _, facet := range failedFacets {
		c.facetFailures.WithLabelValues(facet).Inc()
	}
}

func (c *Collector) ObserveAdmission(source string, admitted, rejected int) {
	if c == nil {
		return
	}
	if source == "" {
		source = "unknown"
	}
	c.admissions.WithLabelValues(source, "admitted").Add(float64(admitted))
	c.admissions.WithLabelValues(source, "rejected").Add(float64(rejected))
}

func (c *Collector) ObserveFeeLookup(result string) {
	if c == nil {
		return
	}
	c.feeLookups.WithLabelValues(result).Inc()
}
