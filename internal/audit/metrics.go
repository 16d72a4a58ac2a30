package audit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks audit writes.
type Metrics struct {
	Written       *prometheus.CounterVec
	WriteFailures prometheus.Counter
}

// NewMetrics registers audit metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Written: f.NewCounterVec(prometheus.CounterOpts{
			Name: "localdir_audit_entries_written_total",
			Help: "Audit entries persisted, by action",
		}, []string{"action"}),
		WriteFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "localdir_audit_write_failures_total",
			Help: "Audit entries that could not be persisted",
		}),
	}
}

func (m *Metrics) incWritten(action string) {
	if m != nil {
		m.Written.WithLabelValues(action).Inc()
	}
}

func (m *Metrics) incFailure() {
	if m != nil {
		m.WriteFailures.Inc()
	}
}
