package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	leadsStored     prometheus.Counter
	reportsSent     prometheus.Counter
	reportsFailed   prometheus.Counter
}

// NewMetricsService registers the collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	leadsStored := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "leads_stored_total",
		Help: "Total number of new leads persisted",
	})

	reportsSent := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reports_sent_total",
		Help: "Total number of report emails delivered",
	})

	reportsFailed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_send_failures_total",
		Help: "Total number of report emails that failed to send",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, leadsStored, reportsSent, reportsFailed, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		leadsStored:     leadsStored,
		reportsSent:     reportsSent,
		reportsFailed:   reportsFailed,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one served request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, strconv.Itoa(status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// IncLeadStored counts a newly persisted lead (duplicates excluded).
func (s *MetricsService) IncLeadStored() { s.leadsStored.Inc() }

// IncReportSent counts a delivered report email.
func (s *MetricsService) IncReportSent() { s.reportsSent.Inc() }

// IncReportFailed counts a failed delivery attempt.
func (s *MetricsService) IncReportFailed() { s.reportsFailed.Inc() }
