package plan

import (
	"gopkg.in/yaml.v3"

	"injection-planner/diagnostic"
)

// Report is a serialisable summary of a plan, used to surface planning
// results outside the process.
type Report struct {
	Node             string      `yaml:"node"`
	Kind             string      `yaml:"kind"`
	Alternatives     int         `yaml:"alternatives"`
	Feasible         bool        `yaml:"feasible"`
	Ambiguous        bool        `yaml:"ambiguous"`
	Injectable       bool        `yaml:"injectable"`
	FutureDependency bool        `yaml:"future_dependency,omitempty"`
	Plan             string      `yaml:"plan"`
	Explanation      string      `yaml:"explanation,omitempty"`
	Tree             *ReportNode `yaml:"tree"`
	Diagnostics      []string    `yaml:"diagnostics,omitempty"`
}

// ReportNode mirrors one plan node.
type ReportNode struct {
	Node         string        `yaml:"node"`
	Kind         string        `yaml:"kind"`
	Alternatives int           `yaml:"alternatives"`
	Value        string        `yaml:"value,omitempty"`
	Constructor  string        `yaml:"constructor,omitempty"`
	Children     []*ReportNode `yaml:"children,omitempty"`
}

// NewReport summarises p together with diags, copied as given. Planner.Report
// passes the diagnostics of the request that built p. diags may be nil.
func NewReport(p InjectionPlan, diags *diagnostic.Diagnostics) *Report {
	r := &Report{
		Node:             p.Node().FullName(),
		Kind:             p.Kind().String(),
		Alternatives:     p.NumAlternatives(),
		Feasible:         p.IsFeasible(),
		Ambiguous:        p.IsAmbiguous(),
		Injectable:       p.IsInjectable(),
		FutureDependency: p.HasFutureDependency(),
		Plan:             p.String(),
		Tree:             newReportNode(p),
	}

	if err := Explain(p); err != nil {
		r.Explanation = err.Error()
	}

	if diags != nil {
		for _, d := range diags.All() {
			r.Diagnostics = append(r.Diagnostics, d.String())
		}
	}

	return r
}

func newReportNode(p InjectionPlan) *ReportNode {
	rn := &ReportNode{
		Node:         p.Node().FullName(),
		Kind:         p.Kind().String(),
		Alternatives: p.NumAlternatives(),
	}

	switch v := p.(type) {
	case *Constructor:
		rn.Constructor = v.def.String()
	case *Terminal:
		rn.Kind = v.kind.String()
		rn.Value = v.value
	}

	for _, c := range p.Children() {
		rn.Children = append(rn.Children, newReportNode(c))
	}

	return rn
}

// YAML renders the report.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
