package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation outcomes
const (
	OutcomeCreated              = "created"
	OutcomeMethodNotAllowed     = "method_not_allowed"
	OutcomeBadRequest           = "bad_request"
	OutcomeJurisdictionNotFound = "jurisdiction_not_found"
	OutcomeBlueprintNotFound    = "blueprint_not_found"
	OutcomeBlueprintInvalid     = "blueprint_invalid"
	OutcomeStoreWriteFailed     = "store_write_failed"
	OutcomeError                = "error"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	Generations     *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers all collectors with reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Metrics{
		Generations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "permit_checklist_generations_total",
			Help: "Checklist generation requests by outcome",
		}, []string{"outcome"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "permit_checklist_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route", "status"}),
		gatherer: reg,
	}
}

// IncrementGeneration records one generation request outcome.
func (m *Metrics) IncrementGeneration(outcome string) {
	m.Generations.WithLabelValues(outcome).Inc()
}

// Middleware observes request latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
