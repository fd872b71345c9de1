package snapshot

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrine-store/vitrine/internal"
)

func TestLocalStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "cart.json")

	store, err := NewLocalStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, []byte(`{"items":[]}`)))

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, string(data))
}

func TestLocalStore_LoadMissingReturnsNotFound(t *testing.T) {
	store, err := NewLocalStore(filepath.Join(t.TempDir(), "cart.json"))
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(filepath.Join(t.TempDir(), "cart.json"))
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, []byte("first")))
	require.NoError(t, store.Save(ctx, []byte("second")))

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestNewStore_Providers(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		cfg      internal.SnapshotConfig
		wantType any
		wantErr  bool
	}{
		{
			name:     "local",
			cfg:      internal.SnapshotConfig{Provider: "local", LocalPath: filepath.Join(dir, "a.json")},
			wantType: &LocalStore{},
		},
		{
			name:     "default is local",
			cfg:      internal.SnapshotConfig{Provider: "", LocalPath: filepath.Join(dir, "b.json")},
			wantType: &LocalStore{},
		},
		{
			name:     "memory",
			cfg:      internal.SnapshotConfig{Provider: "memory"},
			wantType: &MemoryStore{},
		},
		{
			name:    "unknown",
			cfg:     internal.SnapshotConfig{Provider: "dynamo"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown snapshot provider")
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, store)
		})
	}
}

func TestMemoryStore_FailSave(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Seed([]byte("kept"))
	store.FailSave = assert.AnError

	require.Error(t, store.Save(ctx, []byte("lost")))

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "kept", string(data))
}
