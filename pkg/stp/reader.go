package stp

import (
	"bufio"
	stderrors "errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/stp2sgmwcs/pkg/errors"
)

// SectionMarker is the literal that opens every section.
const SectionMarker = "Section"

// maxLineSize bounds a single input line. Comment sections of real
// instances occasionally carry long free-text lines.
const maxLineSize = 1 << 20

// ReadOptions controls how strictly node ids are checked.
type ReadOptions struct {
	// Strict rejects edge targets, terminals and coordinates whose node id
	// lies outside 1..NodeCount.
	Strict bool
}

// Read parses an STP stream with default options.
// Read does not close r.
func Read(r io.Reader) (*Instance, error) {
	return ReadWithOptions(r, ReadOptions{})
}

// ReadWithOptions parses an STP stream. On error no partial instance is
// returned. ReadWithOptions does not close r.
func ReadWithOptions(r io.Reader, opts ReadOptions) (*Instance, error) {
	p := newParser(r, opts)
	return p.parse()
}

// ReadFile opens path, parses it and closes it again.
func ReadFile(path string, opts ReadOptions) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadWithOptions(f, opts)
}

type parser struct {
	sc   *bufio.Scanner
	line int
	opts ReadOptions
}

func newParser(r io.Reader, opts ReadOptions) *parser {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &parser{sc: sc, opts: opts}
}

func (p *parser) parse() (*Instance, error) {
	// File header, then the graph section header.
	if err := p.openSection(); err != nil {
		return nil, err
	}
	if err := p.openSection(); err != nil {
		return nil, err
	}

	nodes, err := p.readCount("node count")
	if err != nil {
		return nil, err
	}
	edges, err := p.readCount("edge count")
	if err != nil {
		return nil, err
	}

	in := NewInstance(nodes)
	in.EdgeCount = edges
	if err := p.readEdges(in, edges); err != nil {
		return nil, err
	}

	if err := p.openSection(); err != nil {
		return nil, err
	}
	if err := p.readTerminals(in); err != nil {
		return nil, err
	}

	if err := p.openSection(); err != nil {
		return nil, err
	}
	if err := p.readCoords(in); err != nil {
		return nil, err
	}
	return in, nil
}

// next returns the fields of the next line.
func (p *parser) next(what string) ([]string, error) {
	if !p.sc.Scan() {
		if err := p.scanErr(); err != nil {
			return nil, err
		}
		return nil, errors.Format(0, "expected %s", what)
	}
	p.line++
	return strings.Fields(p.sc.Text()), nil
}

// scanErr converts a scanner failure. A line over maxLineSize is malformed
// input, anything else is an I/O error.
func (p *parser) scanErr() error {
	err := p.sc.Err()
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, bufio.ErrTooLong):
		return errors.Format(p.line+1, "line exceeds %d bytes", maxLineSize)
	}
	return errors.Wrap(errors.ErrCodeIO, err, "read line %d", p.line+1)
}

// openSection skips lines up to and including the next section marker.
func (p *parser) openSection() error {
	for p.sc.Scan() {
		p.line++
		if strings.Contains(p.sc.Text(), SectionMarker) {
			return nil
		}
	}
	if err := p.scanErr(); err != nil {
		return err
	}
	return errors.Format(0, "missing %q marker", SectionMarker)
}

func (p *parser) readCount(what string) (int, error) {
	fields, err := p.next(what)
	if err != nil {
		return 0, err
	}
	if len(fields) < 2 {
		return 0, errors.Format(p.line, "expected %s as \"<label> <integer>\", got %d fields", what, len(fields))
	}
	n, err := p.atoi(fields[1])
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.Format(p.line, "negative %s %d", what, n)
	}
	return n, nil
}

func (p *parser) readEdges(in *Instance, count int) error {
	for range count {
		fields, err := p.next("edge line")
		if err != nil {
			return err
		}
		if len(fields) != 4 {
			return errors.Format(p.line, "expected edge as \"<marker> <from> <to> <weight>\", got %d fields", len(fields))
		}
		vals, err := p.ints(fields[1:])
		if err != nil {
			return err
		}
		from, to, w := vals[0], vals[1], vals[2]
		if !in.InRange(from) {
			return errors.Format(p.line, "edge source %d outside 1..%d", from, in.NodeCount)
		}
		if p.opts.Strict && !in.InRange(to) {
			return errors.Format(p.line, "edge target %d outside 1..%d", to, in.NodeCount)
		}
		in.AddEdge(from, to, w)
	}
	return nil
}

func (p *parser) readTerminals(in *Instance) error {
	count, err := p.readCount("terminal count")
	if err != nil {
		return err
	}
	for range count {
		fields, err := p.next("terminal line")
		if err != nil {
			return err
		}
		if len(fields) < 2 {
			return errors.Format(p.line, "expected terminal as \"<marker> <node>\", got %d fields", len(fields))
		}
		id, err := p.atoi(fields[1])
		if err != nil {
			return err
		}
		if p.opts.Strict && !in.InRange(id) {
			return errors.Format(p.line, "terminal %d outside 1..%d", id, in.NodeCount)
		}
		in.Terminals.Add(id)
	}
	return nil
}

func (p *parser) readCoords(in *Instance) error {
	for range in.NodeCount {
		fields, err := p.next("coordinate line")
		if err != nil {
			return err
		}
		if len(fields) != 4 {
			return errors.Format(p.line, "expected coordinate as \"<marker> <node> <x> <y>\", got %d fields", len(fields))
		}
		vals, err := p.ints(fields[1:])
		if err != nil {
			return err
		}
		if p.opts.Strict && !in.InRange(vals[0]) {
			return errors.Format(p.line, "coordinate node %d outside 1..%d", vals[0], in.NodeCount)
		}
		in.Coords[vals[0]] = Point{X: vals[1], Y: vals[2]}
	}
	return nil
}

func (p *parser) atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Format(p.line, "expected integer, got %q", s)
	}
	return n, nil
}

func (p *parser) ints(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := p.atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
