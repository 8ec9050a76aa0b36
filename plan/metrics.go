package plan

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeInjectable = "injectable"
	outcomeAmbiguous  = "ambiguous"
	outcomeInfeasible = "infeasible"
	outcomeError      = "error"
)

var (
	plansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "injection_planner_plans_total",
			Help: "Number of planning requests by outcome.",
		},
		[]string{"outcome"},
	)

	planDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "injection_planner_plan_duration_seconds",
			Help:    "Time taken to build an injection plan.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RegisterMetrics registers the planner collectors with reg. Registering
// twice with the same registry is not an error.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{plansTotal, planDuration} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return err
			}
		}
	}

	return nil
}

func observe(p InjectionPlan, started time.Time) {
	planDuration.Observe(time.Since(started).Seconds())
	plansTotal.WithLabelValues(outcome(p)).Inc()
}

func outcome(p InjectionPlan) string {
	switch {
	case p == nil:
		return outcomeError
	case p.IsInjectable():
		return outcomeInjectable
	case !p.IsFeasible():
		return outcomeInfeasible
	default:
		return outcomeAmbiguous
	}
}
