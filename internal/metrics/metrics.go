// Package metrics holds the Prometheus collectors of the service. They are
// registered on the default registry and served by promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"billboard-ops/internal/core/domain"
)

var (
	availabilityChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "billboard",
		Name:      "availability_checks_total",
		Help:      "Availability checks by billboard type and outcome.",
	}, []string{"type", "result"})

	bookingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "billboard",
		Name:      "booking_transitions_total",
		Help:      "Booking lifecycle changes by resulting status.",
	}, []string{"status"})

	sequenceIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "billboard",
		Name:      "sequence_codes_issued_total",
		Help:      "Reference codes issued by entity.",
	}, []string{"entity"})
)

// ObserveAvailability counts one availability check.
func ObserveAvailability(t domain.BillboardType, available bool) {
	result := "conflict"
	if available {
		result = "available"
	}
	availabilityChecks.WithLabelValues(string(t), result).Inc()
}

// ObserveTransition counts a booking reaching status.
func ObserveTransition(status domain.BookingStatus) {
	bookingTransitions.WithLabelValues(string(status)).Inc()
}

// ObserveSequence counts an issued reference code.
func ObserveSequence(entity domain.SequenceEntity) {
	sequenceIssued.WithLabelValues(string(entity)).Inc()
}
