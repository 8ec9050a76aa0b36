package plan

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"injection-planner/diagnostic"
	"injection-planner/graph"
	"injection-planner/internal/common"
	"injection-planner/monotonic"
)

var (
	// ErrLoopyConstructor is returned when a constructor needs, directly or
	// transitively, an instance of its own class without an injection future
	// breaking the cycle.
	ErrLoopyConstructor = errors.New("detected loopy constructor")
	// ErrMaxDepth is returned when a plan nests deeper than Config.MaxDepth.
	ErrMaxDepth = errors.New("maximum plan depth exceeded")
)

// Diagnostic codes reported by the planner.
const (
	CodeDanglingDefault      = "dangling_default_implementation"
	CodeImplementationCycle  = "implementation_cycle"
	CodeUnregisteredArgument = "unregistered_argument"
	CodeIgnoredSelfBinding   = "ignored_self_binding"
	CodeLoopyConstructor     = "loopy_constructor"
	CodeMaxDepth             = "max_depth_exceeded"
	CodePrunedConstructor    = "pruned_constructor"
)

// Planner builds injection plans from a graph and a set of bindings.
// It is safe for concurrent use; each request gets its own memo.
type Planner struct {
	g        *graph.Graph
	bindings Bindings
	cfg      Config
	log      *zap.Logger

	diags  *diagnostic.Diagnostics
	warned *monotonic.Set[string]
}

// Option configures a Planner.
type Option func(*Planner)

// WithConfig sets the planner configuration. Out-of-range limits fall back
// to their defaults.
func WithConfig(cfg Config) Option {
	return func(p *Planner) {
		applyDefaults(&cfg)
		p.cfg = cfg
	}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(log *zap.Logger) Option {
	return func(p *Planner) {
		if log != nil {
			p.log = log
		}
	}
}

// NewPlanner returns a planner over g. A nil b means no explicit bindings.
func NewPlanner(g *graph.Graph, b Bindings, opts ...Option) *Planner {
	if b == nil {
		b = noBindings{}
	}

	p := &Planner{
		g:        g,
		bindings: b,
		cfg:      DefaultConfig(),
		log:      zap.NewNop(),
		diags:    &diagnostic.Diagnostics{},
		warned:   monotonic.New[string](),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Config returns the effective configuration.
func (p *Planner) Config() Config { return p.cfg }

// Diagnostics returns the warnings collected by every request so far.
func (p *Planner) Diagnostics() *diagnostic.Diagnostics { return p.diags }

// Plan resolves fullName in the graph and plans it.
func (p *Planner) Plan(fullName string) (InjectionPlan, error) {
	n, err := p.g.Lookup(fullName)
	if err != nil {
		observe(nil, time.Now())

		return nil, fmt.Errorf("failed to plan %s: %w", fullName, err)
	}

	return p.PlanNode(n)
}

// PlanNode plans n. Structural failures are reported through the plan, not
// the error, unless Config.StrictMode is set.
func (p *Planner) PlanNode(n graph.Node) (InjectionPlan, error) {
	ip, _, err := p.planNode(n)

	return ip, err
}

// Report plans fullName and summarises the result with the diagnostics raised
// while building it.
func (p *Planner) Report(fullName string) (*Report, error) {
	n, err := p.g.Lookup(fullName)
	if err != nil {
		observe(nil, time.Now())

		return nil, fmt.Errorf("failed to plan %s: %w", fullName, err)
	}

	ip, diags, err := p.planNode(n)
	if ip == nil {
		return nil, err
	}

	return NewReport(ip, diags), err
}

func (p *Planner) planNode(n graph.Node) (InjectionPlan, *diagnostic.Diagnostics, error) {
	started := time.Now()

	r := &request{
		planner:  p,
		memo:     make(map[string]InjectionPlan),
		building: make(map[string]bool),
		diags:    &diagnostic.Diagnostics{},
		seen:     make(map[string]bool),
	}

	ip, err := r.build(n, 0)
	observe(ip, started)

	if err != nil {
		p.log.Debug("planning failed", zap.String("node", n.FullName()), zap.Error(err))

		switch {
		case errors.Is(err, ErrLoopyConstructor):
			p.diags.AddError(CodeLoopyConstructor, err.Error(), n.FullName())
		case errors.Is(err, ErrMaxDepth):
			p.diags.AddError(CodeMaxDepth, err.Error(), n.FullName())
		}

		return nil, r.diags, err
	}

	p.log.Info("planned node",
		zap.String("node", n.FullName()),
		zap.Stringer("kind", ip.Kind()),
		zap.Int("alternatives", ip.NumAlternatives()),
		zap.Bool("injectable", ip.IsInjectable()),
		zap.Bool("ambiguous", ip.IsAmbiguous()),
		zap.Duration("elapsed", time.Since(started)),
	)

	if p.cfg.StrictMode {
		if err := Explain(ip); err != nil {
			return ip, r.diags, err
		}
	}

	return ip, r.diags, nil
}

// warn records a warning once per code and node, in the request and in the
// planner-wide diagnostics.
func (r *request) warn(code, message, node string, suggestions ...string) {
	key := code + "|" + node
	if !r.seen[key] {
		r.seen[key] = true
		r.diags.AddWarning(code, message, node, suggestions...)
	}

	p := r.planner
	if !p.warned.Add(key) {
		return
	}

	p.log.Warn(message, zap.String("code", code), zap.String("node", node), zap.Strings("suggestions", suggestions))
	p.diags.AddWarning(code, message, node, suggestions...)
}

// note records an info diagnostic once per code, node and subject.
func (r *request) note(code, message, node, subject string) {
	key := code + "|" + node + "|" + subject
	if !r.seen[key] {
		r.seen[key] = true
		r.diags.AddInfo(code, message, node)
	}

	if r.planner.warned.Add(key) {
		r.planner.diags.AddInfo(code, message, node)
	}
}

// request is the state of one planning request.
type request struct {
	planner  *Planner
	memo     map[string]InjectionPlan
	building map[string]bool

	diags *diagnostic.Diagnostics
	seen  map[string]bool
}

func (r *request) build(n graph.Node, depth int) (InjectionPlan, error) {
	name := n.FullName()

	if ip, ok := r.memo[name]; ok {
		return ip, nil
	}

	if r.building[name] {
		return nil, fmt.Errorf("%w involving %s", ErrLoopyConstructor, name)
	}

	if depth > r.planner.cfg.MaxDepth {
		return nil, fmt.Errorf("%w: %d at %s", ErrMaxDepth, r.planner.cfg.MaxDepth, name)
	}

	r.building[name] = true
	defer delete(r.building, name)

	ip, err := r.buildUncached(n, depth)
	if err != nil {
		return nil, err
	}

	r.memo[name] = ip

	r.planner.log.Debug("resolved node",
		zap.String("node", name),
		zap.Stringer("kind", ip.Kind()),
		zap.Int("alternatives", ip.NumAlternatives()),
	)

	return ip, nil
}

func (r *request) buildUncached(n graph.Node, depth int) (InjectionPlan, error) {
	b := r.planner.bindings

	if v, ok := b.Instance(n); ok {
		return NewValue(n, fmt.Sprint(v)), nil
	}

	switch node := n.(type) {
	case *graph.NamedParameterNode:
		return r.buildNamed(node), nil
	case *graph.ClassNode:
		return r.buildClass(node, depth)
	default:
		return nil, fmt.Errorf("%w: cannot plan %s %s", graph.ErrBinding, n.Kind(), n.FullName())
	}
}

func (r *request) buildNamed(np *graph.NamedParameterNode) InjectionPlan {
	if v, ok := r.planner.bindings.NamedValue(np); ok {
		return NewValue(np, v)
	}

	if v, ok := np.DefaultValue(); ok {
		return NewValue(np, v)
	}

	return NewInfeasible(np)
}

func (r *request) buildClass(cn *graph.ClassNode, depth int) (InjectionPlan, error) {
	b := r.planner.bindings

	if factory, ok := b.BoundConstructor(cn); ok {
		return r.build(factory, depth+1)
	}

	boundImpl, bound := b.BoundImplementation(cn)
	if bound {
		if !graph.Equal(boundImpl, cn) {
			return r.build(boundImpl, depth+1)
		}

		r.warn(CodeIgnoredSelfBinding, "implementation bound to itself", cn.FullName())
	}

	defaultImpl, hasDefault, err := r.defaultImplementation(cn)
	if err != nil {
		return nil, err
	}

	if hasDefault && !graph.Equal(defaultImpl, cn) {
		return r.build(defaultImpl, depth+1)
	}

	var candidates []*graph.ClassNode

	if !bound && !hasDefault {
		for _, impl := range graph.Implementations(cn) {
			if impl.IsExternalConstructor() {
				continue
			}

			if graph.IsImplementationOf(cn, impl) {
				r.warn(CodeImplementationCycle,
					fmt.Sprintf("%s and %s implement each other", cn.FullName(), impl.FullName()),
					cn.FullName(), impl.FullName())

				continue
			}

			candidates = append(candidates, impl)
		}
	}

	candidates = append(candidates, cn)

	var viable, attempted []InjectionPlan

	for _, c := range candidates {
		ip, err := r.buildCandidate(c, depth)
		if err != nil {
			return nil, err
		}

		switch {
		case ip == nil:
		case ip.IsFeasible():
			viable = append(viable, ip)
		default:
			attempted = append(attempted, ip)
		}
	}

	switch {
	case common.IsSingle(viable):
		return viable[0], nil
	case common.IsMultiple(viable):
		return NewChoice(cn, viable...), nil
	case common.IsEmpty(attempted):
		return NewInfeasible(cn), nil
	case common.IsSingle(attempted):
		return attempted[0], nil
	default:
		return NewChoice(cn, attempted...), nil
	}
}

// defaultImplementation resolves the default implementation of cn. A
// default that is not registered is reported and ignored.
func (r *request) defaultImplementation(cn *graph.ClassNode) (*graph.ClassNode, bool, error) {
	name := cn.DefaultImplementation()
	if name == "" {
		return nil, false, nil
	}

	impl, err := r.planner.g.Class(name)
	if err != nil {
		var nre *graph.NameResolutionError
		if errors.As(err, &nre) {
			r.warn(CodeDanglingDefault,
				fmt.Sprintf("default implementation %s is not registered", name),
				cn.FullName(), nre.Suggestions...)

			return nil, false, nil
		}

		return nil, false, fmt.Errorf("default implementation of %s: %w", cn.FullName(), err)
	}

	return impl, true, nil
}

// buildCandidate plans every constructor of c. It returns nil when c has
// nothing to try, the plan itself when one constructor survives and a
// choice otherwise.
func (r *request) buildCandidate(c *graph.ClassNode, depth int) (InjectionPlan, error) {
	defs := c.InjectableConstructors()
	if legacy, ok := r.planner.bindings.LegacyConstructor(c); ok {
		defs = append([]*graph.ConstructorDef{legacy}, defs...)
	}

	if len(defs) == 0 {
		return nil, nil
	}

	var feasible, failed []*Constructor

	for _, def := range defs {
		ip, err := r.buildConstructor(c, def, depth)
		if err != nil {
			return nil, err
		}

		if ip.IsFeasible() {
			feasible = append(feasible, ip)
		} else {
			failed = append(failed, ip)
		}
	}

	if r.planner.cfg.PruneLessSpecific {
		feasible = r.pruneLessSpecific(c, feasible)
	}

	switch {
	case common.IsSingle(feasible):
		return feasible[0], nil
	case common.IsMultiple(feasible):
		return NewChoice(c, asPlans(feasible)...), nil
	case common.IsSingle(failed):
		return failed[0], nil
	default:
		return NewChoice(c, asPlans(failed)...), nil
	}
}

func (r *request) buildConstructor(c *graph.ClassNode, def *graph.ConstructorDef, depth int) (*Constructor, error) {
	args := make([]InjectionPlan, len(def.Args))

	for i, arg := range def.Args {
		n, err := r.planner.g.Lookup(arg.Target())
		if err != nil {
			r.warn(CodeUnregisteredArgument,
				fmt.Sprintf("constructor %s%s takes unregistered %s", c.FullName(), def, arg.Target()),
				c.FullName())

			return nil, fmt.Errorf("failed to plan constructor %s%s: %w", c.FullName(), def, err)
		}

		if arg.Future {
			args[i] = NewFuture(n)

			continue
		}

		if args[i], err = r.build(n, depth+1); err != nil {
			return nil, err
		}
	}

	return NewConstructor(c, def, args...), nil
}

// pruneLessSpecific keeps the feasible constructors that no other feasible
// constructor is more specific than.
func (r *request) pruneLessSpecific(c *graph.ClassNode, feasible []*Constructor) []*Constructor {
	if len(feasible) < 2 {
		return feasible
	}

	kept := make([]*Constructor, 0, len(feasible))

	for _, ip := range feasible {
		dominated := false

		for _, other := range feasible {
			if other != ip && other.def.IsMoreSpecificThan(ip.def) {
				dominated = true

				break
			}
		}

		if dominated {
			r.planner.log.Debug("pruned less specific constructor",
				zap.String("node", c.FullName()),
				zap.Stringer("constructor", ip.def),
			)
			r.note(CodePrunedConstructor,
				fmt.Sprintf("constructor %s%s pruned by a more specific one", c.FullName(), ip.def),
				c.FullName(), ip.def.String())

			continue
		}

		kept = append(kept, ip)
	}

	return kept
}

func asPlans(cs []*Constructor) []InjectionPlan {
	out := make([]InjectionPlan, len(cs))
	for i, c := range cs {
		out[i] = c
	}

	return out
}
