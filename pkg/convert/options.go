package convert

import (
	"time"

	"github.com/matzehuels/stp2sgmwcs/pkg/cache"
	"github.com/matzehuels/stp2sgmwcs/pkg/sgmwcs"
	"github.com/matzehuels/stp2sgmwcs/pkg/stp"
)

// Options configures a conversion run.
type Options struct {
	// OutDir receives the output files. Empty means the input's directory.
	OutDir string

	// Strict rejects node ids outside 1..N anywhere in the input.
	Strict bool

	// Allocator is the signal numbering strategy (sgmwcs.AllocLowestFree or
	// sgmwcs.AllocCounter).
	Allocator string

	// InfToken spells infinite weights.
	InfToken string

	// Refresh ignores cached results but still stores fresh ones.
	Refresh bool

	// CacheTTL is the lifetime of stored results.
	CacheTTL time.Duration
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	t := o.translateOptions()
	if err := t.Validate(); err != nil {
		return err
	}
	o.Allocator = t.Allocator
	o.InfToken = t.InfToken
	if o.CacheTTL <= 0 {
		o.CacheTTL = cache.DefaultTTL
	}
	return nil
}

func (o Options) translateOptions() sgmwcs.Options {
	return sgmwcs.Options{Allocator: o.Allocator, InfToken: o.InfToken}
}

func (o Options) readOptions() stp.ReadOptions {
	return stp.ReadOptions{Strict: o.Strict}
}

// KeyOpts returns the options that are part of the cache key.
func (o Options) KeyOpts() cache.KeyOpts {
	return cache.KeyOpts{
		Allocator: o.Allocator,
		InfToken:  o.InfToken,
		Strict:    o.Strict,
	}
}
