package convert

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/matzehuels/stp2sgmwcs/pkg/errors"
	"github.com/matzehuels/stp2sgmwcs/pkg/sgmwcs"
)

// Outputs are the three files written for one input.
type Outputs struct {
	Edges   string
	Nodes   string
	Signals string
}

// All returns the paths in write order.
func (o Outputs) All() []string {
	return []string{o.Edges, o.Nodes, o.Signals}
}

// OutputPaths derives the output files for input. Outputs go to outDir, or
// next to input when outDir is empty.
func OutputPaths(input, outDir string) Outputs {
	dir, name := filepath.Split(input)
	if outDir != "" {
		dir = outDir
	}
	if dir == "" {
		dir = "."
	}
	e, n, s := sgmwcs.Paths(dir, name)
	return Outputs{Edges: e, Nodes: n, Signals: s}
}

// IsOutput reports whether path looks like a file this tool writes, so a
// broad pattern such as "dir/*" does not feed previous outputs back in.
func IsOutput(path string) bool {
	name := filepath.Base(path)
	for _, p := range []string{sgmwcs.EdgesPrefix, sgmwcs.NodesPrefix, sgmwcs.SignalsPrefix} {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// Match expands pattern into the regular files to convert, sorted by path.
// Directories are skipped, and so are previous outputs when pattern is a
// glob. A file named literally is kept whatever its name. A pattern that
// matches nothing is a FILE_NOT_FOUND error.
func Match(pattern string) ([]string, error) {
	if err := errors.ValidatePattern(pattern); err != nil {
		return nil, err
	}
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPattern, err, "expand %q", pattern)
	}

	glob := hasMeta(pattern)
	var files []string
	for _, m := range matches {
		if glob && IsOutput(m) {
			continue
		}
		if info, err := os.Stat(m); err == nil && info.IsDir() {
			continue
		}
		files = append(files, m)
	}
	if len(files) == 0 {
		return nil, errors.New(errors.ErrCodeFileNotFound, "no STP files match %q", pattern)
	}
	slices.Sort(files)
	return files, nil
}

// hasMeta reports whether pattern contains glob syntax.
func hasMeta(pattern string) bool {
	magic := `*?[`
	if runtime.GOOS != "windows" {
		magic = `*?[\`
	}
	return strings.ContainsAny(pattern, magic)
}
