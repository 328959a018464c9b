// Package storagetest holds the behaviour every storage.Gateway must share.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WellnessQuest_Go/internal/storage"
)

// RunGatewayContract exercises get/set/remove semantics against gw.
// Keys are prefixed with t.Name() so a shared backend can be reused across runs.
func RunGatewayContract(t *testing.T, gw storage.Gateway) {
	t.Helper()
	ctx := context.Background()
	key := func(k string) string { return t.Name() + "/" + k }

	t.Run("missing key", func(t *testing.T) {
		_, err := gw.Get(ctx, key("missing"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, gw.Set(ctx, key("a"), []byte(`{"hearts":2}`)))

		got, err := gw.Get(ctx, key("a"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"hearts":2}`, string(got))
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, gw.Set(ctx, key("b"), []byte(`1`)))
		require.NoError(t, gw.Set(ctx, key("b"), []byte(`2`)))

		got, err := gw.Get(ctx, key("b"))
		require.NoError(t, err)
		assert.Equal(t, "2", string(got))
	})

	t.Run("remove several including absent", func(t *testing.T) {
		require.NoError(t, gw.Set(ctx, key("c"), []byte(`true`)))
		require.NoError(t, gw.Set(ctx, key("d"), []byte(`false`)))

		require.NoError(t, gw.Remove(ctx, key("c"), key("d"), key("never-set")))

		_, err := gw.Get(ctx, key("c"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
		_, err = gw.Get(ctx, key("d"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("remove nothing", func(t *testing.T) {
		assert.NoError(t, gw.Remove(ctx))
	})

	t.Run("returned value is not aliased", func(t *testing.T) {
		require.NoError(t, gw.Set(ctx, key("e"), []byte(`"abc"`)))

		got, err := gw.Get(ctx, key("e"))
		require.NoError(t, err)
		got[1] = 'z'

		again, err := gw.Get(ctx, key("e"))
		require.NoError(t, err)
		assert.Equal(t, `"abc"`, string(again))
	})
}

// RunKeyListerContract checks prefix listing against a gateway that supports it
func RunKeyListerContract(t *testing.T, gw storage.Gateway) {
	t.Helper()
	ctx := context.Background()

	lister, ok := gw.(storage.KeyLister)
	require.True(t, ok, "gateway must implement storage.KeyLister")

	prefix := "list/" + t.Name() + "/"
	require.NoError(t, gw.Set(ctx, prefix+"b", []byte(`1`)))
	require.NoError(t, gw.Set(ctx, prefix+"a", []byte(`1`)))
	require.NoError(t, gw.Set(ctx, "other/"+t.Name(), []byte(`1`)))

	keys, err := lister.Keys(ctx, prefix)
	require.NoError(t, err)
	assert.Equal(t, []string{prefix + "a", prefix + "b"}, keys)

	keys, err = lister.Keys(ctx, prefix+"zzz")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
