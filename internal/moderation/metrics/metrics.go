package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the moderation module.
type Metrics struct {
	// Transitions by entity type, target status and outcome
	// (changed, unchanged, conflict, error).
	Transitions *prometheus.CounterVec

	TransitionLatency prometheus.Histogram

	// Secondary effects that did not complete
	SideEffectFailures *prometheus.CounterVec

	PendingCacheHits   prometheus.Counter
	PendingCacheMisses prometheus.Counter
}

// New registers the moderation metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "localdir_moderation_transitions_total",
			Help: "Moderation transition requests by entity type, target and outcome",
		}, []string{"type", "target", "outcome"}),

		TransitionLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "localdir_moderation_transition_duration_seconds",
			Help:    "Duration of a transition including side effects",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		SideEffectFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "localdir_moderation_side_effect_failures_total",
			Help: "Audit, notification, event or cache steps that failed after a transition",
		}, []string{"effect"}), // effect: "audit", "notification", "event", "cache"

		PendingCacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "localdir_moderation_count_cache_hits_total",
			Help: "Status counts served from cache",
		}),
		PendingCacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "localdir_moderation_count_cache_misses_total",
			Help: "Status counts loaded from the store",
		}),
	}
}

func (m *Metrics) IncrementTransition(entityType, target, outcome string) {
	if m != nil {
		m.Transitions.WithLabelValues(entityType, target, outcome).Inc()
	}
}

func (m *Metrics) ObserveTransitionLatency(d time.Duration) {
	if m != nil {
		m.TransitionLatency.Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementSideEffectFailure(effect string) {
	if m != nil {
		m.SideEffectFailures.WithLabelValues(effect).Inc()
	}
}

func (m *Metrics) IncrementCacheHit() {
	if m != nil {
		m.PendingCacheHits.Inc()
	}
}

func (m *Metrics) IncrementCacheMiss() {
	if m != nil {
		m.PendingCacheMisses.Inc()
	}
}
