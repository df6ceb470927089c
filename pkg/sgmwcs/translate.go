package sgmwcs

import (
	"github.com/matzehuels/stp2sgmwcs/pkg/errors"
	"github.com/matzehuels/stp2sgmwcs/pkg/stp"
)

// Options configures a translation.
type Options struct {
	// Allocator selects the signal numbering strategy. Empty means
	// AllocLowestFree.
	Allocator string

	// InfToken spells infinite weights in the signals relation. Empty means
	// DefaultInfToken.
	InfToken string
}

// Validate checks the options and fills in defaults.
func (o *Options) Validate() error {
	if o.Allocator == "" {
		o.Allocator = AllocLowestFree
	}
	if o.InfToken == "" {
		o.InfToken = DefaultInfToken
	}
	if err := errors.ValidateOneOf("allocator", o.Allocator, Allocators...); err != nil {
		return err
	}
	return errors.ValidateToken("inf token", o.InfToken)
}

// EdgeRecord is one line of the edges relation.
type EdgeRecord struct {
	From, To int
	Signal   string
}

// NodeRecord is one line of the nodes relation.
type NodeRecord struct {
	Node   int
	Signal string
}

// Result holds the three relations produced by [Translate].
type Result struct {
	Edges   []EdgeRecord
	Nodes   []NodeRecord
	Signals *Table

	infToken  string
	terminals int
	saturated int
}

// InfToken returns the spelling used for infinite weights.
func (r *Result) InfToken() string { return r.infToken }

// Translate maps an instance onto SGMWCS signals. The instance is not
// modified and no state survives the call.
func Translate(in *stp.Instance, opts Options) (*Result, error) {
	if in == nil || len(in.Adj) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "instance has no adjacency list")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	alloc, err := newAllocator(opts.Allocator)
	if err != nil {
		return nil, err
	}

	sigs := NewTable()
	terminals := in.Terminals.Sorted()
	for _, t := range terminals {
		sigs.Set(SignalID(t), Int(0))
	}
	sigs.Set(NoGroup, Int(0))

	res := &Result{Signals: sigs, infToken: opts.InfToken, terminals: len(terminals)}
	for n1 := 1; n1 < len(in.Adj); n1++ {
		grouped := false
		for _, arc := range in.Adj[n1] {
			if !in.Terminals.Has(arc.To) {
				sig := alloc.next(sigs)
				sigs.Set(sig, Int(-arc.Weight))
				res.Edges = append(res.Edges, EdgeRecord{From: n1, To: arc.To, Signal: sig})
				continue
			}
			sig := SignalID(arc.To)
			sigs.Set(sig, Int(arc.Weight))
			res.Nodes = append(res.Nodes, NodeRecord{Node: n1, Signal: sig})
			grouped = true
		}
		if !grouped {
			res.Nodes = append(res.Nodes, NodeRecord{Node: n1, Signal: NoGroup})
		}
	}

	res.saturated = sigs.saturate()
	return res, nil
}

// Stats summarizes a translation.
type Stats struct {
	EdgeRecords     int // lines in the edges relation
	NodeRecords     int // lines in the nodes relation, fallbacks included
	Fallbacks       int // nodes mapped to NoGroup
	Signals         int // entries in the signal table
	EdgeSignals     int // fresh signals allocated for non-terminal arcs
	TerminalSignals int // signals named after terminals
	Infinite        int // signals rewritten to infinity
}

// Stats counts the records of r.
func (r *Result) Stats() Stats {
	s := Stats{
		EdgeRecords:     len(r.Edges),
		NodeRecords:     len(r.Nodes),
		Signals:         r.Signals.Len(),
		EdgeSignals:     len(r.Edges),
		TerminalSignals: r.terminals,
		Infinite:        r.saturated,
	}
	for _, n := range r.Nodes {
		if n.Signal == NoGroup {
			s.Fallbacks++
		}
	}
	return s
}
