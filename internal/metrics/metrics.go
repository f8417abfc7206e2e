// Package metrics provides Prometheus metrics for Healing Guru
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Intensity bands. Only the band is exported as a metric, never a per-user score.
const (
	BandLow      = "low"
	BandModerate = "moderate"
	BandHigh     = "high"
	BandCrisis   = "crisis"
)

// Metrics holds all Prometheus metrics for Healing Guru
type Metrics struct {
	registry *prometheus.Registry

	// HTTP request metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Engine outcome metrics
	ResponsesTotal           *prometheus.CounterVec
	CrisisResponsesTotal     prometheus.Counter
	ToolRecommendationsTotal *prometheus.CounterVec
	IntensityBandTotal       *prometheus.CounterVec

	// Channel and storage metrics
	ChannelMessagesTotal *prometheus.CounterVec
	StoreErrorsTotal     *prometheus.CounterVec
}

// New creates all metrics and registers them on a fresh registry together
// with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

// NewWithRegistry creates all metrics on reg. Tests pass their own registry
// so collectors never clash with the global default.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{registry: reg}

	// HTTP request metrics
	m.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healing_guru_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	m.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "healing_guru_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	m.HTTPRequestsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "healing_guru_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Engine outcome metrics
	m.ResponsesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healing_guru_responses_total",
			Help: "Total number of chat responses by the stage that produced them",
		},
		[]string{"stage"},
	)

	m.CrisisResponsesTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "healing_guru_crisis_responses_total",
			Help: "Total number of crisis responses",
		},
	)

	m.ToolRecommendationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healing_guru_tool_recommendations_total",
			Help: "Total number of coping tool recommendations by tool",
		},
		[]string{"tool"},
	)

	m.IntensityBandTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healing_guru_intensity_band_total",
			Help: "Total number of chat messages by internal intensity band",
		},
		[]string{"band"},
	)

	// Channel and storage metrics
	m.ChannelMessagesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healing_guru_channel_messages_total",
			Help: "Total number of chat channel messages",
		},
		[]string{"channel", "direction"},
	)

	m.StoreErrorsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healing_guru_store_errors_total",
			Help: "Total number of failed store operations",
		},
		[]string{"operation"},
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordHTTPRequest records an HTTP request with its status
func (m *Metrics) RecordHTTPRequest(route, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordResponse records one engine outcome.
func (m *Metrics) RecordResponse(stage string, crisis bool, score int, tools []string) {
	m.ResponsesTotal.WithLabelValues(stage).Inc()
	if crisis {
		m.CrisisResponsesTotal.Inc()
	}
	for _, t := range tools {
		m.ToolRecommendationsTotal.WithLabelValues(t).Inc()
	}
	m.IntensityBandTotal.WithLabelValues(Band(score)).Inc()
}

// RecordChannelMessage counts an inbound or outbound channel message.
func (m *Metrics) RecordChannelMessage(channel, direction string) {
	m.ChannelMessagesTotal.WithLabelValues(channel, direction).Inc()
}

// RecordStoreError counts a failed store operation.
func (m *Metrics) RecordStoreError(operation string) {
	m.StoreErrorsTotal.WithLabelValues(operation).Inc()
}

// Band maps an internal 0 to 10 score to its coarse band.
func Band(score int) string {
	switch {
	case score >= 7:
		return BandCrisis
	case score >= 6:
		return BandHigh
	case score >= 4:
		return BandModerate
	default:
		return BandLow
	}
}
