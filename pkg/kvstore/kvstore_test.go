package kvstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopkit/storefront/pkg/kvstore"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	t.Run("get missing key returns ErrNotFound", func(t *testing.T) {
		t.Parallel()

		s := kvstore.NewMemory()

		_, err := s.Get(context.Background(), "missing")
		require.ErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		t.Parallel()

		s := kvstore.NewMemory()
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "k", "v"))

		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, "v", v)
	})

	t.Run("set overwrites existing value", func(t *testing.T) {
		t.Parallel()

		s := kvstore.NewMemory()
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "k", "old"))
		require.NoError(t, s.Set(ctx, "k", "new"))

		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, "new", v)
	})

	t.Run("remove deletes key", func(t *testing.T) {
		t.Parallel()

		s := kvstore.NewMemory()
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "k", "v"))
		require.NoError(t, s.Remove(ctx, "k"))

		_, err := s.Get(ctx, "k")
		require.ErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("remove absent key is not an error", func(t *testing.T) {
		t.Parallel()

		s := kvstore.NewMemory()
		require.NoError(t, s.Remove(context.Background(), "absent"))
	})
}

func TestFile(t *testing.T) {
	t.Parallel()

	t.Run("persists across reopen", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "state.json")
		ctx := context.Background()

		s, err := kvstore.NewFile(path)
		require.NoError(t, err)
		require.NoError(t, s.Set(ctx, "token", "abc"))
		require.NoError(t, s.Set(ctx, "cart", `[{"id":1}]`))

		reopened, err := kvstore.NewFile(path)
		require.NoError(t, err)

		v, err := reopened.Get(ctx, "token")
		require.NoError(t, err)
		require.Equal(t, "abc", v)

		v, err = reopened.Get(ctx, "cart")
		require.NoError(t, err)
		require.Equal(t, `[{"id":1}]`, v)
	})

	t.Run("remove persists across reopen", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "state.json")
		ctx := context.Background()

		s, err := kvstore.NewFile(path)
		require.NoError(t, err)
		require.NoError(t, s.Set(ctx, "token", "abc"))
		require.NoError(t, s.Remove(ctx, "token"))

		reopened, err := kvstore.NewFile(path)
		require.NoError(t, err)

		_, err = reopened.Get(ctx, "token")
		require.ErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("missing file starts empty", func(t *testing.T) {
		t.Parallel()

		s, err := kvstore.NewFile(filepath.Join(t.TempDir(), "nope.json"))
		require.NoError(t, err)

		_, err = s.Get(context.Background(), "k")
		require.ErrorIs(t, err, kvstore.ErrNotFound)
	})
}
