package stp

import "slices"

// Arc is one directed, weighted edge leaving a node.
type Arc struct {
	To     int
	Weight int
}

// Point is a node coordinate. Coordinates are informational only.
type Point struct {
	X, Y int
}

// TerminalSet holds the ids of terminal nodes.
type TerminalSet map[int]struct{}

// Has reports whether id is a terminal.
func (s TerminalSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Add marks id as a terminal.
func (s TerminalSet) Add(id int) {
	s[id] = struct{}{}
}

// Sorted returns the terminal ids in ascending order.
func (s TerminalSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Instance is a parsed STP file.
type Instance struct {
	NodeCount int
	EdgeCount int

	// Adj is indexed by source node id and has NodeCount+1 entries.
	Adj [][]Arc

	Terminals TerminalSet
	Coords    map[int]Point
}

// NewInstance returns an empty instance sized for nodes nodes.
func NewInstance(nodes int) *Instance {
	return &Instance{
		NodeCount: nodes,
		Adj:       make([][]Arc, nodes+1),
		Terminals: make(TerminalSet),
		Coords:    make(map[int]Point, nodes),
	}
}

// AddEdge appends an arc from -> to. It panics if from is outside the
// adjacency list; the reader checks ranges before calling it.
func (in *Instance) AddEdge(from, to, weight int) {
	in.Adj[from] = append(in.Adj[from], Arc{To: to, Weight: weight})
}

// ArcCount returns the number of stored arcs.
func (in *Instance) ArcCount() int {
	n := 0
	for _, arcs := range in.Adj {
		n += len(arcs)
	}
	return n
}

// InRange reports whether id is a valid node id for this instance.
func (in *Instance) InRange(id int) bool {
	return id >= 1 && id <= in.NodeCount
}
