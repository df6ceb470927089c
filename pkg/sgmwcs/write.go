package sgmwcs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/stp2sgmwcs/pkg/errors"
)

// Output file prefixes. The solver expects edges_<name>, nodes_<name> and
// signals_<name> next to each other.
const (
	EdgesPrefix   = "edges_"
	NodesPrefix   = "nodes_"
	SignalsPrefix = "signals_"
)

// WriteEdges writes "<from> <to> <signal>" lines to w.
func (r *Result) WriteEdges(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range r.Edges {
		fmt.Fprintf(bw, "%d %d %s\n", e.From, e.To, e.Signal)
	}
	return bw.Flush()
}

// WriteNodes writes "<node> <signal>" lines to w.
func (r *Result) WriteNodes(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, n := range r.Nodes {
		fmt.Fprintf(bw, "%d %s\n", n.Node, n.Signal)
	}
	return bw.Flush()
}

// WriteSignals writes "<signal> <weight>" lines to w in table order.
func (r *Result) WriteSignals(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for id, weight := range r.Signals.All() {
		fmt.Fprintf(bw, "%s %s\n", id, weight.Format(r.infToken))
	}
	return bw.Flush()
}

// Paths returns the three output paths for an input named name in dir.
func Paths(dir, name string) (edges, nodes, signals string) {
	return filepath.Join(dir, EdgesPrefix+name),
		filepath.Join(dir, NodesPrefix+name),
		filepath.Join(dir, SignalsPrefix+name)
}

// WriteFiles writes the three relations into dir, overwriting existing
// files. Files already written are left in place if a later one fails.
func (r *Result) WriteFiles(dir, name string) error {
	edges, nodes, signals := Paths(dir, name)
	if err := WriteFile(edges, r.WriteEdges); err != nil {
		return err
	}
	if err := WriteFile(nodes, r.WriteNodes); err != nil {
		return err
	}
	return WriteFile(signals, r.WriteSignals)
}

// WriteFile creates path and fills it with write. The file is closed on
// every path and a close failure is reported.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "close %s", path)
		}
	}()
	if err := write(f); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
