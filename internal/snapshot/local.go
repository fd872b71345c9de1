package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore implements Store using a single file on the local filesystem.
// This is the default provider for development and single-node deployments.
type LocalStore struct {
	path string // Full path of the snapshot file (e.g., "./data/cart.json")
}

// NewLocalStore creates a local filesystem snapshot store.
// The parent directory is created if it doesn't exist.
func NewLocalStore(path string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	return &LocalStore{path: path}, nil
}

// Load reads the snapshot file.
func (s *LocalStore) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	return data, nil
}

// Save writes the snapshot through a temporary file and renames it into
// place, so a crash mid-write never leaves a truncated snapshot behind.
func (s *LocalStore) Save(ctx context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".cart-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}
