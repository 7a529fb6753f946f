// Package cache provides pluggable byte caches for pipeline results.
//
// Three backends are available: FileCache for CLI usage, RedisCache for the
// HTTP server, and NullCache to disable caching entirely. Keys are built by
// a Keyer so that every stage of the pipeline (layout, rendered artifact)
// gets a stable, collision-resistant key derived from its inputs.
package cache

import (
	"context"
	"time"
)

// Default TTLs per pipeline stage. Layouts are pure functions of their
// inputs so they could live forever; bounded TTLs keep disk and Redis
// usage predictable.
const (
	TTLLayout   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores and retrieves opaque byte values with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// LayoutKeyOpts captures the layout parameters that affect cache identity.
type LayoutKeyOpts struct {
	Mode          string
	Size          float64
	MinSeparation float64
}

// ArtifactKeyOpts captures the render parameters that affect cache identity.
type ArtifactKeyOpts struct {
	Format string
	Style  string
	Legend bool
}

// Keyer generates cache keys for pipeline stages.
type Keyer interface {
	// LayoutKey generates a key for a computed wheel layout.
	// chartHash is the hash of the canonical chart JSON.
	LayoutKey(chartHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	// layoutHash is the hash of the layout JSON the artifact was rendered from.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates unscoped keys. Suitable for single-user CLI usage.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a computed wheel layout.
func (k *DefaultKeyer) LayoutKey(chartHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", chartHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
