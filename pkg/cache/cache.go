// Package cache stores translated SGMWCS relations keyed by the content of
// the STP input and the translation options.
//
// Conversion is deterministic, so a cached entry for the same input bytes
// and options is byte-identical to a fresh translation. Three backends
// implement [Cache]:
//
//   - [NullCache]: never stores anything (the default)
//   - [FileCache]: one JSON file per entry under the user cache directory
//   - [RedisCache]: a shared Redis instance, for batch runs spread over
//     several machines
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the lifetime of cached conversions when none is configured.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
