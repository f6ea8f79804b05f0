package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Flow
	FlowsCreated     prometheus.Counter
	FlowsEvicted     prometheus.Counter
	ProbesIssued     prometheus.Counter
	ProbesDiscarded  prometheus.Counter
	ProbesFailed     prometheus.Counter
	SubmissionsTotal *prometheus.CounterVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		FlowsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_flows_created_total",
			Help:        "Total number of booking flow instances created",
			ConstLabels: constLabels,
		}),

		FlowsEvicted: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_flows_evicted_total",
			Help:        "Total number of abandoned flow instances evicted by TTL",
			ConstLabels: constLabels,
		}),

		ProbesIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "availability_probes_issued_total",
			Help:        "Total number of availability probes issued",
			ConstLabels: constLabels,
		}),

		ProbesDiscarded: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "availability_probes_discarded_total",
			Help:        "Total number of stale availability probe results discarded",
			ConstLabels: constLabels,
		}),

		ProbesFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "availability_probes_failed_total",
			Help:        "Total number of failed availability probes",
			ConstLabels: constLabels,
		}),

		SubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Total number of booking submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// RecordFlowCreated инкрементирует счетчик созданных флоу
func (m *Metrics) RecordFlowCreated() {
	if m == nil {
		return
	}
	m.FlowsCreated.Inc()
}

// RecordFlowEvicted инкрементирует счетчик вытесненных флоу
func (m *Metrics) RecordFlowEvicted() {
	if m == nil {
		return
	}
	m.FlowsEvicted.Inc()
}

// RecordProbeIssued инкрементирует счетчик запущенных проб
func (m *Metrics) RecordProbeIssued() {
	if m == nil {
		return
	}
	m.ProbesIssued.Inc()
}

// RecordProbeDiscarded инкрементирует счетчик отброшенных устаревших результатов
func (m *Metrics) RecordProbeDiscarded() {
	if m == nil {
		return
	}
	m.ProbesDiscarded.Inc()
}

// RecordProbeFailed инкрементирует счетчик неудачных проб
func (m *Metrics) RecordProbeFailed() {
	if m == nil {
		return
	}
	m.ProbesFailed.Inc()
}

// RecordSubmission инкрементирует счетчик отправок бронирования
func (m *Metrics) RecordSubmission(outcome string) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(outcome).Inc()
}
