package plan

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"injection-planner/graph"
)

// counterValues gathers injection_planner_plans_total by outcome.
func counterValues(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]float64)

	for _, mf := range families {
		if mf.GetName() != "injection_planner_plans_total" {
			continue
		}

		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "outcome" {
					out[l.GetValue()] = m.GetCounter().GetValue()
				}
			}
		}
	}

	return out
}

func TestRegisterMetricsTwice(t *testing.T) {
	reg := prometheus.NewRegistry()

	require.NoError(t, RegisterMetrics(reg))
	require.NoError(t, RegisterMetrics(reg))
}

func TestMetricsCountOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, RegisterMetrics(reg))

	g := graph.New()

	def, err := graph.NewConstructorDef("app.Clock")
	require.NoError(t, err)

	_, err = g.RegisterClass(graph.ClassSpec{
		Name:                   "app.Clock",
		Injectable:             true,
		InjectableConstructors: []*graph.ConstructorDef{def},
	})
	require.NoError(t, err)

	_, err = g.RegisterClass(graph.ClassSpec{Name: "app.Store", Injectable: true})
	require.NoError(t, err)

	before := counterValues(t, reg)

	p := NewPlanner(g, nil)

	_, err = p.Plan("app.Clock")
	require.NoError(t, err)

	_, err = p.Plan("app.Store")
	require.NoError(t, err)

	_, err = p.Plan("app.Nope")
	require.Error(t, err)

	after := counterValues(t, reg)

	assert.InDelta(t, 1, after[outcomeInjectable]-before[outcomeInjectable], 0)
	assert.InDelta(t, 1, after[outcomeInfeasible]-before[outcomeInfeasible], 0)
	assert.InDelta(t, 1, after[outcomeError]-before[outcomeError], 0)
	assert.InDelta(t, 0, after[outcomeAmbiguous]-before[outcomeAmbiguous], 0)
}
