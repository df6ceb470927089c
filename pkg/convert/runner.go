package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/stp2sgmwcs/pkg/cache"
	"github.com/matzehuels/stp2sgmwcs/pkg/errors"
	"github.com/matzehuels/stp2sgmwcs/pkg/observability"
	"github.com/matzehuels/stp2sgmwcs/pkg/sgmwcs"
	"github.com/matzehuels/stp2sgmwcs/pkg/stp"
)

// Runner converts STP files. It holds no per-file state, so one Runner can
// serve any number of batches.
type Runner struct {
	Cache   cache.Cache
	Logger  *log.Logger
	Options Options
}

// NewRunner creates a runner. A nil cache disables caching and a nil logger
// falls back to log.Default().
func NewRunner(c cache.Cache, logger *log.Logger, opts Options) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger, Options: opts}
}

// Report describes one converted file.
type Report struct {
	Input     string
	Outputs   Outputs
	Nodes     int
	Edges     int
	Terminals int
	Stats     sgmwcs.Stats
	CacheHit  bool
	Duration  time.Duration
}

// entry is the cached form of a conversion.
type entry struct {
	Edges     []byte       `json:"edges"`
	Nodes     []byte       `json:"nodes"`
	Signals   []byte       `json:"signals"`
	NodeCount int          `json:"node_count"`
	EdgeCount int          `json:"edge_count"`
	Terminals int          `json:"terminals"`
	Stats     sgmwcs.Stats `json:"stats"`
}

// ConvertGlob converts every file matched by pattern. See [Match] for how
// the pattern is expanded.
func (r *Runner) ConvertGlob(ctx context.Context, pattern string) ([]*Report, error) {
	files, err := Match(pattern)
	if err != nil {
		return nil, err
	}
	return r.convertBatch(ctx, pattern, files)
}

// ConvertFiles converts paths in order and stops at the first failure. The
// reports of files converted before the failure are returned with the error.
func (r *Runner) ConvertFiles(ctx context.Context, paths []string) ([]*Report, error) {
	return r.convertBatch(ctx, "", paths)
}

func (r *Runner) convertBatch(ctx context.Context, pattern string, paths []string) ([]*Report, error) {
	opts := r.Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := r.Logger.With("run", runID[:8])
	hooks := observability.Conversion()
	hooks.OnBatchStart(ctx, runID, pattern, len(paths))
	logger.Debug("starting batch", "files", len(paths), "pattern", pattern)

	start := time.Now()
	reports := make([]*Report, 0, len(paths))
	var err error
	for _, p := range paths {
		if err = ctx.Err(); err != nil {
			break
		}
		var rep *Report
		if rep, err = r.convert(ctx, logger, opts, p); err != nil {
			break
		}
		reports = append(reports, rep)
	}

	hooks.OnBatchComplete(ctx, runID, len(reports), time.Since(start), err)
	return reports, err
}

// ConvertFile converts a single file.
func (r *Runner) ConvertFile(ctx context.Context, path string) (*Report, error) {
	opts := r.Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return r.convert(ctx, r.Logger, opts, path)
}

func (r *Runner) convert(ctx context.Context, logger *log.Logger, opts Options, path string) (rep *Report, err error) {
	hooks := observability.Conversion()
	hooks.OnConvertStart(ctx, path)
	start := time.Now()
	defer func() {
		signals := 0
		if rep != nil {
			signals = rep.Stats.Signals
			rep.Duration = time.Since(start)
		}
		hooks.OnConvertComplete(ctx, path, signals, time.Since(start), err)
		if err != nil {
			err = fmt.Errorf("%s: %w", path, err)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read input")
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read input")
	}
	key := cache.Key(cache.Hash(data), opts.KeyOpts())

	e, hit := r.lookup(ctx, logger, opts, key)
	if !hit {
		if e, err = translate(data, opts); err != nil {
			return nil, err
		}
	}

	out := OutputPaths(path, opts.OutDir)
	for _, f := range []struct {
		path string
		data []byte
	}{
		{out.Edges, e.Edges},
		{out.Nodes, e.Nodes},
		{out.Signals, e.Signals},
	} {
		if err := sgmwcs.WriteFile(f.path, writeBytes(f.data)); err != nil {
			return nil, err
		}
	}

	if !hit {
		r.store(ctx, logger, opts, key, e)
	}

	rep = &Report{
		Input:     path,
		Outputs:   out,
		Nodes:     e.NodeCount,
		Edges:     e.EdgeCount,
		Terminals: e.Terminals,
		Stats:     e.Stats,
		CacheHit:  hit,
	}
	logger.Debug("converted",
		"input", path,
		"signals", e.Stats.Signals,
		"cached", hit,
		"duration", time.Since(start).Round(time.Microsecond))
	return rep, nil
}

// translate parses and translates one input held in memory and renders the
// three relations.
func translate(data []byte, opts Options) (*entry, error) {
	in, err := stp.ReadWithOptions(bytes.NewReader(data), opts.readOptions())
	if err != nil {
		return nil, err
	}
	res, err := sgmwcs.Translate(in, opts.translateOptions())
	if err != nil {
		return nil, err
	}

	var edges, nodes, signals bytes.Buffer
	if err := res.WriteEdges(&edges); err != nil {
		return nil, err
	}
	if err := res.WriteNodes(&nodes); err != nil {
		return nil, err
	}
	if err := res.WriteSignals(&signals); err != nil {
		return nil, err
	}
	return &entry{
		Edges:     edges.Bytes(),
		Nodes:     nodes.Bytes(),
		Signals:   signals.Bytes(),
		NodeCount: in.NodeCount,
		EdgeCount: in.EdgeCount,
		Terminals: len(in.Terminals),
		Stats:     res.Stats(),
	}, nil
}

func (r *Runner) lookup(ctx context.Context, logger *log.Logger, opts Options, key string) (*entry, bool) {
	if opts.Refresh {
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache lookup failed", "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, key)
		return nil, false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		logger.Debug("discarding unreadable cache entry", "key", key, "err", err)
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, key)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, key)
	return &e, true
}

func (r *Runner) store(ctx context.Context, logger *log.Logger, opts Options, key string, e *entry) {
	data, err := json.Marshal(e)
	if err != nil {
		logger.Warn("cache encode failed", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
		logger.Warn("cache store failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, key, len(data))
}

func writeBytes(data []byte) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}
}
