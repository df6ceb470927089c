package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stp2sgmwcs/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Converted 12 files (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks reports conversion and cache events at debug level.
type logHooks struct {
	observability.NoopConversionHooks
	logger *log.Logger
}

func (h *logHooks) OnBatchComplete(_ context.Context, runID string, converted int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("batch stopped", "run", shortID(runID), "converted", converted, "err", err)
		return
	}
	h.logger.Debug("batch complete", "run", shortID(runID), "converted", converted, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnConvertComplete(_ context.Context, path string, _ int, _ time.Duration, err error) {
	if err != nil {
		h.logger.Debug("conversion failed", "input", path, "err", err)
	}
}

func (h *logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", shortKey(key))
}

func (h *logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", shortKey(key))
}

func (h *logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache store", "key", shortKey(key), "bytes", size)
}

// shortID matches the run prefix the runner attaches to its own log lines.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// shortKey keeps the tail of a cache key, which is the input digest.
func shortKey(key string) string {
	if len(key) > 12 {
		return key[len(key)-12:]
	}
	return key
}
