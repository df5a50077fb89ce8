package lifecycle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/proinvestix/desktop/internal/domain"
)

type metrics struct {
	events      *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

// newMetrics builds the controller counters. A nil registerer leaves them
// unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "proinvestix_tray_events_total",
			Help: "Tray and window events received by the lifecycle controller",
		}, []string{"source", "item"}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "proinvestix_window_transitions_total",
			Help: "Main window visibility transitions",
		}, []string{"from", "to"}),
	}
}

func (m *metrics) event(source, item string) {
	m.events.WithLabelValues(source, item).Inc()
}

func (m *metrics) transition(from, to domain.WindowVisibility) {
	m.transitions.WithLabelValues(from.String(), to.String()).Inc()
}
