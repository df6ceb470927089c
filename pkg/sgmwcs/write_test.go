package sgmwcs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/stp2sgmwcs/pkg/errors"
)

func TestPaths(t *testing.T) {
	edges, nodes, signals := Paths("/data", "a.stp")
	if edges != filepath.Join("/data", "edges_a.stp") {
		t.Errorf("edges = %s", edges)
	}
	if nodes != filepath.Join("/data", "nodes_a.stp") {
		t.Errorf("nodes = %s", nodes)
	}
	if signals != filepath.Join("/data", "signals_a.stp") {
		t.Errorf("signals = %s", signals)
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	in := instance(3, []int{2}, edge{1, 2, 5}, edge{1, 3, -4})
	res := mustTranslate(t, in, Options{})

	// Existing outputs are overwritten.
	stale := filepath.Join(dir, "edges_x.stp")
	if err := os.WriteFile(stale, []byte("stale content that is longer\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := res.WriteFiles(dir, "x.stp"); err != nil {
		t.Fatalf("WriteFiles() error: %v", err)
	}

	want := map[string]string{
		"edges_x.stp":   "1 3 S1\n",
		"nodes_x.stp":   "1 S2\n2 S0\n3 S0\n",
		"signals_x.stp": "S2 inf\nS0 0\nS1 inf\n",
	}
	for name, content := range want {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(data) != content {
			t.Errorf("%s = %q, want %q", name, data, content)
		}
	}
}

func TestWriteFilesMissingDir(t *testing.T) {
	res := mustTranslate(t, instance(1, nil), Options{})
	err := res.WriteFiles(filepath.Join(t.TempDir(), "nope"), "x.stp")
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("WriteFiles() error = %v, want IO_ERROR", err)
	}
}
