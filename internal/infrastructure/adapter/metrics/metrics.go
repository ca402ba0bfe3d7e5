package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
)

const namespace = "txc"

// Metrics is the prometheus implementation of core.Metrics plus the HTTP collectors
type Metrics struct {
	registry *prometheus.Registry

	TransactionsCreated *prometheus.CounterVec
	TransactionDecision *prometheus.CounterVec
	KYCSubmissions      prometheus.Counter
	KYCDecisions        *prometheus.CounterVec
	AuthEvents          *prometheus.CounterVec
	RequestCount        *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
}

var _ coreport.Metrics = (*Metrics)(nil)

// New creates the collectors and registers them, with the go and process
// collectors, on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		TransactionsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_created_total",
				Help:      "Total transactions created.",
			},
			[]string{"type", "status"},
		),
		TransactionDecision: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transaction_decisions_total",
				Help:      "Total admin decisions on transactions.",
			},
			[]string{"outcome"},
		),
		KYCSubmissions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "kyc_submissions_total",
				Help:      "Total KYC submissions.",
			},
		),
		KYCDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "kyc_decisions_total",
				Help:      "Total admin decisions on KYC records.",
			},
			[]string{"outcome"},
		),
		AuthEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_events_total",
				Help:      "Total authentication events.",
			},
			[]string{"event", "result"},
		),
		RequestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.TransactionsCreated,
		m.TransactionDecision,
		m.KYCSubmissions,
		m.KYCDecisions,
		m.AuthEvents,
		m.RequestCount,
		m.RequestDuration,
	)
	return m
}

// Registry exposes the registry so that other collectors, such as the DB pool stats, can join it
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) TransactionCreated(txType, status string) {
	m.TransactionsCreated.WithLabelValues(txType, status).Inc()
}

func (m *Metrics) TransactionDecided(outcome string) {
	m.TransactionDecision.WithLabelValues(outcome).Inc()
}

func (m *Metrics) KYCSubmitted() {
	m.KYCSubmissions.Inc()
}

func (m *Metrics) KYCDecided(outcome string) {
	m.KYCDecisions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AuthEvent(event, result string) {
	m.AuthEvents.WithLabelValues(event, result).Inc()
}

// Middleware records count and latency per route template
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.RequestCount.WithLabelValues(c.Request.Method, path, status).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
