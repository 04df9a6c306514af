package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/spotlight/pkg/adapters/file"
	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/aretw0/spotlight/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.NewStore(t.TempDir(), "")
	ports.RunSettingsStoreContract(t, store)
}

func TestFileStore_Path(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStore(dir, "")
	assert.Equal(t, filepath.Join(dir, domain.StorageKey+".json"), store.Path())
}

func TestFileStore_CorruptFileReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStore(dir, "custom")
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0644))

	ctx := context.Background()
	all, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// A write over a corrupt file replaces it.
	require.NoError(t, store.Set(ctx, "hasSeenMainTour", true))
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"hasSeenMainTour": true}`, string(data))
}

func TestFileStore_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStore(dir, "")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", true))
	require.NoError(t, store.Set(ctx, "b", false))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.StorageKey+".json", entries[0].Name())
}
