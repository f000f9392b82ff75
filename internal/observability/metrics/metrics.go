package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BookingAttempts counts booking outcomes: committed, slot_unavailable,
	// timeout, invalid_input, error.
	BookingAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookwise",
		Name:      "booking_attempts_total",
		Help:      "Booking attempts by outcome.",
	}, []string{"outcome"})

	BookingTxDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "bookwise",
		Name:      "booking_tx_duration_seconds",
		Help:      "Duration of the booking check-and-insert critical section.",
		Buckets:   prometheus.DefBuckets,
	})

	AvailabilityRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookwise",
		Name:      "availability_requests_total",
		Help:      "Availability queries by kind (slots, dates).",
	}, []string{"kind"})

	AvailabilityCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bookwise",
		Name:      "availability_cache_hits_total",
		Help:      "Month availability cache hits.",
	})

	AvailabilityCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bookwise",
		Name:      "availability_cache_misses_total",
		Help:      "Month availability cache misses.",
	})

	SideEffectFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookwise",
		Name:      "booking_side_effect_failures_total",
		Help:      "Post-commit side effect failures by step.",
	}, []string{"step"})
)
