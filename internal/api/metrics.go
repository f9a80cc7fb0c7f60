package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the HTTP adapter
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	BatchItems      *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg. stored, when not nil,
// reports the number of sections held by the service.
func NewMetrics(reg prometheus.Registerer, stored func() float64) *Metrics {
	f := promauto.With(reg)
	m := &Metrics{
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "structools_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "structools_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),
		BatchItems: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "structools_batch_items_total",
				Help: "Sections evaluated by batch requests",
			},
			[]string{"result"},
		),
	}

	if stored != nil {
		f.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "structools_sections_stored",
				Help: "Number of sections held in memory",
			},
			stored,
		)
	}
	return m
}
