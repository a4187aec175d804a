// Package cache stores rendered images keyed by the content that produced them.
//
// A planner run tends to emit the same graph many times across iterations.
// When caching is enabled the converter hashes each graph file and reuses a
// previously rendered image instead of invoking the rendering tool again.
//
// Two backends are provided:
//   - [FileCache]: entries stored as JSON files under a directory
//   - [NullCache]: never stores anything (the default)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the cached data and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKey builds the cache key for an image rendered from src.
// The output format and renderer name are part of the key so that switching
// either never serves a stale image. Renderer names carry any setting that
// changes the image, such as the Graphviz layout engine.
func RenderKey(format, renderer string, src []byte) string {
	return hashKey("render", format, renderer, Hash(src))
}
