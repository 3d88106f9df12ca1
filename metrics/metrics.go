// Package metrics exports collection update outcomes as Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	govalues "github.com/reoring/govalues"
)

// Observer counts per-id update outcomes. It implements govalues.Observer.
type Observer struct {
	outcomes *prometheus.CounterVec
}

var _ govalues.Observer = (*Observer)(nil)

// NewObserver creates the counters and registers them with reg. A nil reg
// leaves them unregistered.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "govalues_update_outcomes_total",
				Help: "Validation outcomes of collection updates, per value id.",
			},
			[]string{"id", "status"},
		),
	}
	if reg != nil {
		if err := reg.Register(o.outcomes); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// ObserveUpdate records one outcome.
func (o *Observer) ObserveUpdate(id string, status govalues.Status) {
	o.outcomes.WithLabelValues(id, status.String()).Inc()
}

// Collector exposes the underlying counters, e.g. for testutil.
func (o *Observer) Collector() *prometheus.CounterVec { return o.outcomes }
