package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)
)

var (
	AppointmentsBooked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "appointments_booked_total",
			Help: "Total appointments booked",
		},
	)

	StatusUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_status_updates_total",
			Help: "Status changes applied by staff",
		},
		[]string{"collection", "status"},
	)

	RecordsDeleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_deleted_total",
			Help: "Records removed by staff",
		},
		[]string{"collection"},
	)
)

// Init registers the collectors with the default registry. Call it once, from main.
func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(AppointmentsBooked)
	prometheus.MustRegister(StatusUpdates)
	prometheus.MustRegister(RecordsDeleted)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
