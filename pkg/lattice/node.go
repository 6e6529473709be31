// Package lattice implements the per-call result arena: the transient node
// storage every aggregator writes into, bulk-freed when a prediction call
// returns.
package lattice

// NodeAttribute is a bitset of flags carried on a Node.
type NodeAttribute uint32

const (
	NoAttributes NodeAttribute = 0
	// SpellingCorrection marks a node produced by a mis-spelling-tolerant
	// lookup; propagated to the emitted candidate and consumed by the
	// filter stage.
	SpellingCorrection NodeAttribute = 1 << 0
)

// Node is one arena-allocated lattice entry: either a view copied from a
// dictionary lookup or fabricated directly by an aggregator (Realtime,
// Suffix zero-query counters).
type Node struct {
	Key        string
	Value      string
	Lid        uint16
	Rid        uint16
	Wcost      int32
	Attributes NodeAttribute
}

// ID is a handle into an Arena. The zero value never denotes a valid node;
// arenas allocate starting at index 1 so a bare ID{} reliably means "none".
type ID uint32

// Arena owns every Node fabricated or copied during one Predict call. It is
// discarded (its slice dropped) when the call returns; nothing outlives it.
//
// Nodes are addressed by index-based handles rather than pointers:
// aggregators push nodes and get back a stable ID.
type Arena struct {
	nodes       []Node
	maxNodes    int
	appendCount int
}

// NewArena creates an empty arena. maxNodes of 0 means unlimited.
func NewArena() *Arena {
	// index 0 reserved as the invalid handle.
	return &Arena{nodes: make([]Node, 1, 64)}
}

// SetMaxNodesSize sets the cutoff threshold used by Saturated. Aggregators
// call this before a lookup pass they want overflow-gated.
func (a *Arena) SetMaxNodesSize(n int) {
	a.maxNodes = n
	a.appendCount = 0
}

// New allocates a Node in the arena and returns its handle.
func (a *Arena) New(n Node) ID {
	a.nodes = append(a.nodes, n)
	a.appendCount++
	return ID(len(a.nodes) - 1)
}

// Get dereferences a handle. ID 0 returns the reserved placeholder node;
// an ID beyond the last allocated node panics.
func (a *Arena) Get(id ID) *Node {
	return &a.nodes[id]
}

// Saturated reports whether the number of nodes allocated since the last
// SetMaxNodesSize call has reached the configured cutoff. Aggregators use
// this instead of comparing raw counts against a magic constant, per the
// overflow-policy design note.
func (a *Arena) Saturated() bool {
	return a.maxNodes > 0 && a.appendCount >= a.maxNodes
}
