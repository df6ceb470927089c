package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/stp2sgmwcs/pkg/sgmwcs"
	"github.com/matzehuels/stp2sgmwcs/pkg/stp"
)

// Options configures diagram generation.
type Options struct {
	// Weights appends signal weights to edge and node labels.
	Weights bool

	// UseCoords pins nodes to the instance's coordinates.
	UseCoords bool

	// Scale multiplies coordinates before they are handed to Graphviz.
	// Zero means 1.
	Scale float64
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// ToDOT converts an instance and its translation to Graphviz DOT. res must
// be the result of translating in.
func ToDOT(in *stp.Instance, res *sgmwcs.Result, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	nodeSignals := make(map[int][]string, in.NodeCount)
	for _, n := range res.Nodes {
		nodeSignals[n.Node] = append(nodeSignals[n.Node], n.Signal)
	}

	for id := 1; id <= in.NodeCount; id++ {
		label := fmt.Sprint(id)
		if sigs := nodeSignals[id]; len(sigs) > 0 {
			label += "\n" + strings.Join(labels(res, sigs, opts.Weights), " ")
		}
		attrs := []string{fmt.Sprintf("label=%q", label)}
		if in.Terminals.Has(id) {
			attrs = append(attrs, "shape=doublecircle", "fillcolor=\"#fde68a\"")
		}
		if p, ok := in.Coords[id]; ok && opts.UseCoords {
			s := opts.scale()
			attrs = append(attrs, fmt.Sprintf("pos=\"%g,%g!\"", float64(p.X)*s, float64(p.Y)*s))
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	// Edge records were emitted in adjacency order, skipping arcs into
	// terminals, so walking the arcs the same way pairs them back up.
	next := 0
	for from := 1; from <= in.NodeCount; from++ {
		for _, a := range in.Adj[from] {
			if in.Terminals.Has(a.To) {
				sig := sgmwcs.SignalID(a.To)
				fmt.Fprintf(&buf, "  n%d -> n%d [label=%q, style=dashed];\n", from, a.To, label(res, sig, opts.Weights))
				continue
			}
			if next >= len(res.Edges) {
				continue
			}
			sig := res.Edges[next].Signal
			next++
			fmt.Fprintf(&buf, "  n%d -> n%d [label=%q];\n", from, a.To, label(res, sig, opts.Weights))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func labels(res *sgmwcs.Result, ids []string, weights bool) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = label(res, id, weights)
	}
	return out
}

func label(res *sgmwcs.Result, id string, weights bool) string {
	if !weights {
		return id
	}
	w, ok := res.Signals.Get(id)
	if !ok {
		return id
	}
	return fmt.Sprintf("%s=%s", id, w.Format(res.InfToken()))
}
