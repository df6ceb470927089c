package sgmwcs

import "github.com/matzehuels/stp2sgmwcs/pkg/errors"

// Allocator strategies.
const (
	// AllocLowestFree scans from 1 for the lowest unused suffix on every
	// allocation.
	AllocLowestFree = "lowest-free"

	// AllocCounter resumes the scan where the previous allocation stopped.
	// Signals are never released during a translation, so it hands out the
	// same ids as AllocLowestFree in linear total time.
	AllocCounter = "counter"
)

// Allocators lists the accepted strategy names.
var Allocators = []string{AllocLowestFree, AllocCounter}

// allocator hands out signal ids that are not yet present in a table.
type allocator interface {
	next(t *Table) string
}

func newAllocator(name string) (allocator, error) {
	switch name {
	case "", AllocLowestFree:
		return lowestFree{}, nil
	case AllocCounter:
		return &counter{n: 1}, nil
	}
	return nil, errors.ValidateOneOf("allocator", name, Allocators...)
}

type lowestFree struct{}

func (lowestFree) next(t *Table) string {
	n := 1
	for t.Has(SignalID(n)) {
		n++
	}
	return SignalID(n)
}

type counter struct {
	n int
}

func (c *counter) next(t *Table) string {
	for t.Has(SignalID(c.n)) {
		c.n++
	}
	id := SignalID(c.n)
	c.n++
	return id
}
