package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of bookings created",
		},
		[]string{"tenant"},
	)

	CapacityRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "capacity_rejections_total",
			Help: "Total number of bookings rejected because the schedule was full",
		},
		[]string{"tenant"},
	)

	LockTimeouts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lock_timeouts_total",
			Help: "Total number of operations that timed out waiting for a row lock",
		},
		[]string{"tenant"},
	)

	PaymentsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_recorded_total",
			Help: "Total number of succeeded payments and deposits",
		},
		[]string{"tenant"},
	)

	PaymentsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_failed_total",
			Help: "Total number of payment attempts recorded as failed",
		},
		[]string{"tenant"},
	)

	RefundsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refunds_recorded_total",
			Help: "Total number of succeeded refunds",
		},
		[]string{"tenant"},
	)
)

// Init registers metrics with Prometheus
func Init() {
	prometheus.MustRegister(BookingsCreated)
	prometheus.MustRegister(CapacityRejections)
	prometheus.MustRegister(LockTimeouts)
	prometheus.MustRegister(PaymentsRecorded)
	prometheus.MustRegister(PaymentsFailed)
	prometheus.MustRegister(RefundsRecorded)
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
