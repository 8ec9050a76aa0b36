package graph

//go:generate go tool stringer -type=NodeKind -trimprefix=Kind -output=nodekind_string.go

// NodeKind tells the concrete node type without a type switch.
type NodeKind int

const (
	_ NodeKind = iota // zero value is reserved as invalid

	KindPackage
	KindClass
	KindNamedParameter

	// KindTotal is the number of node kinds, including the invalid zero value.
	KindTotal = int(iota)
)
