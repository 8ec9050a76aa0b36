// Package monotonic provides collections that only grow.
//
// A Set never loses a member once it was added, and a Snapshot taken from it
// is an independent point-in-time copy: later additions to the source are not
// visible through the snapshot, while the snapshot itself can keep growing.
//
// Sets are safe for concurrent use. Readers never block each other and never
// observe a removal.
package monotonic
