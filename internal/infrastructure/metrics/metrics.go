package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks youth application workflow activity.
type Metrics struct {
	Transitions         *prometheus.CounterVec
	ApplicationsCreated prometheus.Counter
	ImportedRecords     prometheus.Counter
	TransitionDuration  prometheus.Histogram
}

// New registers the workflow metrics on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rechartering_application_transitions_total",
			Help: "Youth application transitions by event and outcome",
		}, []string{"event", "outcome"}),
		ApplicationsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "rechartering_applications_created_total",
			Help: "Youth applications accepted by intake",
		}),
		ImportedRecords: f.NewCounter(prometheus.CounterOpts{
			Name: "rechartering_organization_import_records_total",
			Help: "Council file rows imported into the organization hierarchy",
		}),
		TransitionDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rechartering_application_transition_duration_seconds",
			Help:    "Duration of load, transition and persist for one application",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveTransition records one transition attempt. outcome is "ok" or an error class.
func (m *Metrics) ObserveTransition(event, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(event, outcome).Inc()
	m.TransitionDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementApplicationsCreated() {
	if m == nil {
		return
	}
	m.ApplicationsCreated.Inc()
}

func (m *Metrics) AddImportedRecords(n int) {
	if m == nil {
		return
	}
	m.ImportedRecords.Add(float64(n))
}
