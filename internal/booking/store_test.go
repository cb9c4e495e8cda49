package booking

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, ttl), mr
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()

	m := testMachine(t, "massage-relaxant")
	draft := m.New()
	draft.Name = "Awa Koné"

	require.NoError(t, store.Put(ctx, "abc", draft))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, draft, got)
}

func TestStoreGetMissing(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestStoreTTLExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	m := testMachine(t, "massage-relaxant")
	require.NoError(t, store.Put(ctx, "abc", m.New()))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestStorePutRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	m := testMachine(t, "massage-relaxant")
	require.NoError(t, store.Put(ctx, "abc", m.New()))

	mr.FastForward(45 * time.Second)
	require.NoError(t, store.Put(ctx, "abc", m.New()))
	mr.FastForward(45 * time.Second)

	_, err := store.Get(ctx, "abc")
	assert.NoError(t, err, "second Put must have reset the TTL")
}

func TestStoreDelete(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()

	m := testMachine(t, "massage-relaxant")
	require.NoError(t, store.Put(ctx, "abc", m.New()))
	require.NoError(t, store.Delete(ctx, "abc"))

	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	// Deleting a missing draft is not an error.
	assert.NoError(t, store.Delete(ctx, "abc"))
}
