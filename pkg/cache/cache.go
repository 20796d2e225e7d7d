// Package cache provides byte-oriented caching of rendered artifacts.
//
// Keys are opaque strings, typically produced with [Key] from the
// notation text and output format, so identical inputs reuse rendered
// output. Three backends are provided:
//
//   - [FileCache]: directory of files, for CLI usage
//   - [RedisCache]: shared cache for the HTTP server
//   - [NullCache]: disables caching entirely
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts keyed by opaque strings.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A non-positive TTL stores
	// the value without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
