package sgmwcs

import (
	"iter"
	"strconv"
)

// NoGroup is the signal given to nodes without arcs into a terminal.
const NoGroup = "S0"

// SignalID returns the signal name for suffix n.
func SignalID(n int) string {
	return "S" + strconv.Itoa(n)
}

// Table maps signal ids to weights and remembers insertion order.
// Overwriting an existing signal keeps its original position.
type Table struct {
	order   []string
	weights map[string]Weight
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{weights: make(map[string]Weight)}
}

// Set stores w under id.
func (t *Table) Set(id string, w Weight) {
	if _, ok := t.weights[id]; !ok {
		t.order = append(t.order, id)
	}
	t.weights[id] = w
}

// Get returns the weight stored under id.
func (t *Table) Get(id string) (Weight, bool) {
	w, ok := t.weights[id]
	return w, ok
}

// Has reports whether id is present.
func (t *Table) Has(id string) bool {
	_, ok := t.weights[id]
	return ok
}

// Len returns the number of signals.
func (t *Table) Len() int { return len(t.order) }

// IDs returns the signal ids in insertion order.
func (t *Table) IDs() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// All iterates over signals in insertion order.
func (t *Table) All() iter.Seq2[string, Weight] {
	return func(yield func(string, Weight) bool) {
		for _, id := range t.order {
			if !yield(id, t.weights[id]) {
				return
			}
		}
	}
}

// saturate replaces every positive weight with infinity and returns how
// many signals it changed.
func (t *Table) saturate() int {
	n := 0
	for _, id := range t.order {
		if t.weights[id].Positive() {
			t.weights[id] = Inf()
			n++
		}
	}
	return n
}
