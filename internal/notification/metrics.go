package notification

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts notification outcomes.
type Metrics struct {
	Outcomes *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Outcomes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "localdir_notifications_total",
			Help: "Moderation notifications by template and outcome",
		}, []string{"template", "outcome"}),
	}
}

func (m *Metrics) observe(template string, out Outcome) {
	if m == nil {
		return
	}
	label := "sent"
	switch {
	case errors.Is(out.Err, ErrDisabled):
		label = "disabled"
	case errors.Is(out.Err, ErrNoRecipient):
		label = "skipped"
	case out.Err != nil:
		label = "failed"
	}
	m.Outcomes.WithLabelValues(template, label).Inc()
}
