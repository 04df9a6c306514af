package gdata_test

import (
	"context"
	"testing"

	"github.com/aretw0/spotlight/pkg/adapters/gdata"
	"github.com/aretw0/spotlight/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore points the user data directory at a temp dir for the test.
func openTestStore(t *testing.T, key string) *gdata.Store {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("APPDATA", dir)

	store, err := gdata.Open("spotlight_test", key)
	if err != nil {
		t.Skipf("app data directory unavailable: %v", err)
	}
	return store
}

func TestGdataStore_Contract(t *testing.T) {
	store := openTestStore(t, "")
	assert.False(t, store.Degraded())
	ports.RunSettingsStoreContract(t, store)
}

func TestGdataStore_Degraded(t *testing.T) {
	store := gdata.New(nil, "")
	assert.True(t, store.Degraded())
	ports.RunSettingsStoreContract(t, store)
}

func TestGdataStore_Persists(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, "persist_key")
	require.NoError(t, store.Set(ctx, "hasSeenMainTour", true))

	reopened, err := gdata.Open("spotlight_test", "persist_key")
	require.NoError(t, err)
	v, ok, err := reopened.Get(ctx, "hasSeenMainTour")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, v)
}
