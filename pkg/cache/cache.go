// Package cache provides content-addressed caching for expensive
// geometry passes and rendered artifacts.
//
// Space detection rebuilds a full planar subdivision per call, and
// rendered drawings are stable for a given input, so both cache well
// under keys derived from a hash of the drawing content: any edit
// changes the hash and naturally invalidates stale entries.
//
// # Backends
//
//   - FileCache: entries as files under a directory, for CLI usage
//   - RedisCache: shared cache for multi-instance API deployments
//   - NullCache: caching disabled
//
// # Usage
//
//	c, err := cache.NewFileCache(dir)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ContourKey(drawingHash, cache.ContourKeyOpts{ProbeX: x, ProbeY: y})
//	if data, hit, err := c.Get(ctx, key); err == nil && hit {
//		// decode cached contour
//	}
package cache

import (
	"context"
	"time"
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs per entry category.
const (
	// TTLDrawing covers imported drawing snapshots.
	TTLDrawing = 24 * time.Hour

	// TTLContour covers detected space contours.
	TTLContour = time.Hour

	// TTLArtifact covers rendered outputs (DOT, SVG).
	TTLArtifact = time.Hour
)
