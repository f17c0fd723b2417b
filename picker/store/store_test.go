package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/locator/picker/store"
)

type kv interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

func TestStores(t *testing.T) {
	dir := t.TempDir()
	sqlite, err := store.NewSQLite(filepath.Join(dir, "prefs.db"))
	require.NoError(t, err)
	defer sqlite.Close()

	tests := []struct {
		name  string
		store kv
	}{
		{name: "memory", store: store.NewMemory()},
		{name: "yaml file", store: store.NewFile(filepath.Join(dir, "prefs.yaml"))},
		{name: "sqlite", store: sqlite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			_, ok, err := tt.store.Get(ctx, "locate-source-ide")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, tt.store.Set(ctx, "locate-source-ide", "atom"))
			require.NoError(t, tt.store.Set(ctx, "locate-source-ide", "intellij"))
			value, ok, err := tt.store.Get(ctx, "locate-source-ide")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "intellij", value)
		})
	}
}

func TestFile_Reopen(t *testing.T) {
	ctx := context.Background()
	location := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, store.NewFile(location).Set(ctx, "locate-source-ide", "cursor"))

	value, ok, err := store.NewFile(location).Get(ctx, "locate-source-ide")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cursor", value)
}

func TestSQLite_Reopen(t *testing.T) {
	ctx := context.Background()
	location := filepath.Join(t.TempDir(), "prefs.db")
	first, err := store.NewSQLite(location)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "locate-source-ide", "sublime"))
	require.NoError(t, first.Close())

	second, err := store.NewSQLite(location)
	require.NoError(t, err)
	defer second.Close()
	value, ok, err := second.Get(ctx, "locate-source-ide")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sublime", value)
}
