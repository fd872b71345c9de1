// Package snapshot persists the serialized cart under a single fixed key.
// The cart service writes the full snapshot on every mutation and reads it
// back once on startup; the store never interprets the payload.
package snapshot

import (
	"context"

	"github.com/vitrine-store/vitrine/internal"
)

// Store defines the interface for cart snapshot persistence.
// Implementations can use the local filesystem, Redis, or an in-memory map.
type Store interface {
	// Load reads the snapshot. Returns ErrNotFound when nothing has been
	// saved yet.
	Load(ctx context.Context) ([]byte, error)

	// Save writes the snapshot, replacing any previous one.
	Save(ctx context.Context, data []byte) error
}

// NewStore creates a Store implementation based on configuration.
// Returns a LocalStore for the "local" provider, a RedisStore for "redis".
func NewStore(cfg internal.SnapshotConfig) (Store, error) {
	switch cfg.Provider {
	case "local", "":
		return NewLocalStore(cfg.LocalPath)
	case "redis":
		return NewRedisStore(cfg.RedisURL, cfg.Key)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, ErrUnknownProvider(cfg.Provider)
	}
}
