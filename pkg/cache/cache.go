// Package cache stores rendered previews between runs.
//
// Rendering a mesh preview touches every pixel once per node, so the
// pipeline keys each encoded PNG by the design and render options and
// keeps it in a [Cache]. Three backends are provided:
//
//   - [NullCache]: stores nothing (caching disabled)
//   - [FileCache]: JSON entries under a directory, for the CLI
//   - [RedisCache]: shared cache for preview servers
//
// Entries may expire; a backend that loses an entry is never an error,
// the pipeline simply renders again.
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes.
const (
	// TTLPreview bounds how long an encoded preview is kept.
	TTLPreview = 7 * 24 * time.Hour

	// TTLNever stores an entry without expiry.
	TTLNever time.Duration = 0
)

// Cache is a byte store with optional per-entry expiry.
// Implementations are safe for concurrent use.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}
