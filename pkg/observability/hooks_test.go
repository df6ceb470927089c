package observability

import (
	"context"
	"testing"
	"time"
)

type recordingHooks struct {
	NoopConversionHooks
	started []string
}

func (r *recordingHooks) OnConvertStart(_ context.Context, path string) {
	r.started = append(r.started, path)
}

type countingCache struct {
	hits, misses, sets int
}

func (c *countingCache) OnCacheHit(context.Context, string)      { c.hits++ }
func (c *countingCache) OnCacheMiss(context.Context, string)     { c.misses++ }
func (c *countingCache) OnCacheSet(context.Context, string, int) { c.sets++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// Must not panic.
	Conversion().OnBatchStart(ctx, "run", "*.stp", 2)
	Conversion().OnConvertStart(ctx, "a.stp")
	Conversion().OnConvertComplete(ctx, "a.stp", 3, time.Millisecond, nil)
	Conversion().OnBatchComplete(ctx, "run", 1, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "k")
	Cache().OnCacheMiss(ctx, "k")
	Cache().OnCacheSet(ctx, "k", 10)
}

func TestSetConversionHooks(t *testing.T) {
	defer Reset()

	rec := &recordingHooks{}
	SetConversionHooks(rec)
	Conversion().OnConvertStart(context.Background(), "a.stp")

	if len(rec.started) != 1 || rec.started[0] != "a.stp" {
		t.Errorf("started = %v, want [a.stp]", rec.started)
	}

	SetConversionHooks(nil)
	if Conversion() != ConversionHooks(rec) {
		t.Error("SetConversionHooks(nil) should keep the registered hooks")
	}
}

func TestSetCacheHooks(t *testing.T) {
	defer Reset()

	c := &countingCache{}
	SetCacheHooks(c)
	ctx := context.Background()
	Cache().OnCacheMiss(ctx, "k")
	Cache().OnCacheSet(ctx, "k", 1)
	Cache().OnCacheHit(ctx, "k")

	if c.hits != 1 || c.misses != 1 || c.sets != 1 {
		t.Errorf("counts = %+v, want one of each", *c)
	}

	Reset()
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore no-op cache hooks")
	}
}
