// Package graph holds the type graph model consumed by the planner.
//
// A Graph is a namespace tree of nodes keyed by full name:
//   - PackageNode: a namespace segment with no semantics of its own
//   - ClassNode: a class or interface, its constructors, injectability flags
//     and the implementations discovered for it so far
//   - NamedParameterNode: a named configuration value with an optional default
//
// Binders populate the graph up front and keep growing the set of known
// implementations as configuration fragments are merged. Readers (planners)
// only ever see that set grow, never shrink.
package graph
