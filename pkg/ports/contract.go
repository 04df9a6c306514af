package ports

import (
	"context"
	"testing"

	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSettingsStoreContract runs a suite of tests to verify that a SettingsStore
// implementation adheres to the defined interface contract.
// The store must start empty.
func RunSettingsStoreContract(t *testing.T, store SettingsStore) {
	ctx := context.Background()

	t.Run("Get Absent", func(t *testing.T) {
		v, ok, err := store.Get(ctx, "hasSeenMainTour")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, v)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "hasSeenMainTour", true))

		v, ok, err := store.Get(ctx, "hasSeenMainTour")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, v)
	})

	t.Run("Set False Is Present", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, domain.ForceShowKey, false))

		v, ok, err := store.Get(ctx, domain.ForceShowKey)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.False(t, v)
	})

	t.Run("Load Returns Copy", func(t *testing.T) {
		all, err := store.Load(ctx)
		require.NoError(t, err)
		assert.True(t, all.Seen("hasSeenMainTour"))

		all["hasSeenMainTour"] = false
		v, _, err := store.Get(ctx, "hasSeenMainTour")
		require.NoError(t, err)
		assert.True(t, v, "mutating a loaded copy must not change the store")
	})

	t.Run("Reset", func(t *testing.T) {
		require.NoError(t, store.Reset(ctx))

		_, ok, err := store.Get(ctx, "hasSeenMainTour")
		require.NoError(t, err)
		assert.False(t, ok, "Get after Reset should report absent")

		all, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Reset Twice", func(t *testing.T) {
		require.NoError(t, store.Reset(ctx))
		require.NoError(t, store.Reset(ctx))
	})
}
