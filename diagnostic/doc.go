// Package diagnostic provides structured warnings and errors gathered while
// planning injections.
//
// Key capabilities:
//   - Dangling default implementations and self bindings
//   - Constructors naming unregistered types
//   - Implementation cycles found while expanding interfaces
//   - Constructor loops and requests nesting too deep
package diagnostic
