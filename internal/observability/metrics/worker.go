package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	processTotal    *prometheus.CounterVec
	processDuration *prometheus.HistogramVec
	processInFlight prometheus.Gauge
	queueLag        *prometheus.HistogramVec

	extractionTotal *prometheus.CounterVec
	analysesTotal   *prometheus.CounterVec
	overallScore    *prometheus.HistogramVec
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	processTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cva",
			Subsystem: "worker",
			Name:      "cv_process_total",
			Help:      "Total processed CVs by status.",
		},
		[]string{"service", "status"},
	)
	processDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cva",
			Subsystem: "worker",
			Name:      "cv_process_duration_seconds",
			Help:      "CV processing duration in seconds by status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)
	processInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "cva",
			Subsystem: "worker",
			Name:      "cv_process_in_flight",
			Help:      "Number of in-flight CV processing tasks.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	queueLag := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cva",
			Subsystem: "worker",
			Name:      "queue_lag_seconds",
			Help:      "Delay between CV upload and processing start.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"service"},
	)
	extractionTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cva",
			Subsystem: "extraction",
			Name:      "attempts_total",
			Help:      "Total text extractions by method and outcome.",
		},
		[]string{"service", "method", "outcome"},
	)
	analysesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cva",
			Subsystem: "analysis",
			Name:      "completed_total",
			Help:      "Total completed analyses by career field.",
		},
		[]string{"service", "career_field"},
	)
	overallScore := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cva",
			Subsystem: "analysis",
			Name:      "overall_score",
			Help:      "Distribution of overall CV scores.",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		[]string{"service"},
	)

	registry.MustRegister(
		processTotal,
		processDuration,
		processInFlight,
		queueLag,
		extractionTotal,
		analysesTotal,
		overallScore,
	)

	return &WorkerMetrics{
		registry:        registry,
		processTotal:    processTotal,
		processDuration: processDuration,
		processInFlight: processInFlight,
		queueLag:        queueLag,
		extractionTotal: extractionTotal,
		analysesTotal:   analysesTotal,
		overallScore:    overallScore,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartCV() {
	m.processInFlight.Inc()
}

func (m *WorkerMetrics) FinishCV(service string, duration time.Duration, err error) {
	m.processInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}

	m.processTotal.WithLabelValues(service, status).Inc()
	m.processDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}

func (m *WorkerMetrics) ObserveQueueLag(service string, lag time.Duration) {
	if lag < 0 {
		return
	}
	m.queueLag.WithLabelValues(service).Observe(lag.Seconds())
}

func (m *WorkerMetrics) RecordExtraction(service, method string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	if method == "" {
		method = "none"
	}
	m.extractionTotal.WithLabelValues(service, method, outcome).Inc()
}

func (m *WorkerMetrics) RecordAnalysis(service, careerField string, overallScore float64) {
	if careerField == "" {
		careerField = "General"
	}
	m.analysesTotal.WithLabelValues(service, careerField).Inc()
	m.overallScore.WithLabelValues(service).Observe(overallScore)
}
