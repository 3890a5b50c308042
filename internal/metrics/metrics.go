// Package metrics defines Prometheus instrumentation for the conversion service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConversionMetrics holds all service-level metrics.
type ConversionMetrics struct {
	ConversionsTotal      *prometheus.CounterVec
	ConversionErrorsTotal *prometheus.CounterVec
	RateOverridesTotal    *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
}

// NewConversionMetrics registers and returns the service metrics on the
// default registry.
func NewConversionMetrics() *ConversionMetrics {
	return &ConversionMetrics{
		ConversionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Total number of successful conversions",
			},
			[]string{"from", "to"},
		),

		ConversionErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversion_errors_total",
				Help: "Total number of failed conversion requests by error kind",
			},
			[]string{"kind"},
		),

		RateOverridesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_overrides_total",
				Help: "Total number of custom rate overrides applied",
			},
			[]string{"from", "to"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by method and status",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "status"},
		),
	}
}

// Error kind labels for ConversionErrorsTotal.
const (
	ErrKindUnsupportedCurrency = "unsupported_currency"
	ErrKindNegativeAmount      = "negative_amount"
	ErrKindInvalidRate         = "invalid_rate"
	ErrKindInvalidFormat       = "invalid_format"
	ErrKindInternal            = "internal"
)
