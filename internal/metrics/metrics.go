package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "centers_api_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"route", "status"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "centers_api_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500},
	}, []string{"route"})
	ResultCount = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "centers_api_result_count",
		Help:    "Number of items returned per list response",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"route"})
	ValidationErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "centers_api_validation_errors_total",
		Help: "Requests rejected by parameter validation",
	}, []string{"route"})
	DatasetCenters = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "centers_api_dataset_centers",
		Help: "Number of centers loaded at startup",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(ResultCount)
	prometheus.MustRegister(ValidationErrorsTotal)
	prometheus.MustRegister(DatasetCenters)
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }
