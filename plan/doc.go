// Package plan provides the injection plan algebra and the planner that
// builds plans from a type graph.
//
// Planning pipeline:
//  1. A binder registers classes, named parameters and implementation edges
//     in a graph.Graph and supplies explicit choices through Bindings.
//  2. Planner.Plan walks the graph from the requested node. Instances and
//     named values become terminal plans. Bound, default and
//     external-constructor implementations are followed. Otherwise every
//     known implementation and every injectable constructor is tried, and
//     the feasible ones are kept.
//  3. The resulting InjectionPlan is inspected: IsInjectable plans go to the
//     executor, the others are explained through Explain.
//
// Plans are immutable. Their derived properties are computed once, bottom
// up, when a plan node is built.
package plan
