package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestSQLiteStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	got, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Set(ctx, "card:1", []byte("first")))
	got, err = store.Get(ctx, "card:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)

	require.NoError(t, store.Set(ctx, "card:1", []byte("second")))
	got, err = store.Get(ctx, "card:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)

	require.NoError(t, store.Delete(ctx, "card:1"))
	got, err = store.Get(ctx, "card:1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, "card:1"))
}

func TestSQLiteStore_Keys(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "card:b", []byte("{}")))
	require.NoError(t, store.Set(ctx, "card:a", []byte("{}")))
	require.NoError(t, store.Set(ctx, "preset:p1", []byte("{}")))
	require.NoError(t, store.Set(ctx, "fsrs-parameters", []byte("{}")))

	tests := []struct {
		name     string
		prefix   string
		wantKeys []string
	}{
		{
			name:     "card prefix in key order",
			prefix:   "card:",
			wantKeys: []string{"card:a", "card:b"},
		},
		{
			name:     "preset prefix",
			prefix:   "preset:",
			wantKeys: []string{"preset:p1"},
		},
		{
			name:     "prefix without matches",
			prefix:   "review:",
			wantKeys: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys, err := store.Keys(ctx, tc.prefix)
			require.NoError(t, err)
			assert.Equal(t, tc.wantKeys, keys)
		})
	}
}
