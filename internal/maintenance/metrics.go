package maintenance

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintenance_events_generated_total",
			Help: "Maintenance calendar events generated, by event type",
		},
		[]string{"type"},
	)

	generationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "maintenance_event_generation_duration_seconds",
			Help:    "Time spent deriving the maintenance event set from a fleet snapshot",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func observeGeneration(events []MaintenanceEvent, seconds float64) {
	generationDuration.Observe(seconds)
	for _, ev := range events {
		eventsGeneratedTotal.WithLabelValues(string(ev.Type)).Inc()
	}
}
