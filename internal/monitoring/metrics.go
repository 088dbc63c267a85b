package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scan result labels.
const (
	ResultOk     = "ok"
	ResultFailed = "failed"
	ResultFault  = "fault"
)

// Metrics holds all Prometheus metrics of the monitor.
type Metrics struct {
	ScansTotal        *prometheus.CounterVec
	ScanDuration      prometheus.Histogram
	HTTPRequestsTotal *prometheus.CounterVec
}

// NewMetrics registers monitor metrics on provided registerer and returns them.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ScansTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "monitor_scans_total",
			Help: "The total number of finished URL scans by result",
		}, []string{"result"}),
		ScanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "monitor_scan_duration_seconds",
			Help:    "Duration of single URL scan pipelines",
			Buckets: prometheus.DefBuckets,
		}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "monitor_http_requests_total",
			Help: "The total number of handled http requests",
		}, []string{"path", "status"}),
	}
}

// ObserveScan records one finished scan with its duration.
func (m *Metrics) ObserveScan(result string, duration time.Duration) {
	m.ScansTotal.WithLabelValues(result).Inc()
	m.ScanDuration.Observe(duration.Seconds())
}

// IncHTTPRequest records one handled http request.
func (m *Metrics) IncHTTPRequest(path string, status int) {
	m.HTTPRequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
}
