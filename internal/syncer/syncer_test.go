package syncer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flashleaf/flashleaf/internal/card"
	"github.com/flashleaf/flashleaf/internal/kvstore"
	mock_remote "github.com/flashleaf/flashleaf/internal/mocks/remote"
	"github.com/flashleaf/flashleaf/internal/remote"
	"github.com/flashleaf/flashleaf/internal/replica"
)

func newTestSynchronizer(t *testing.T, session remote.Session) (*Synchronizer, *replica.Store, *mock_remote.MockClient) {
	t.Helper()
	kv, err := kvstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = kv.Close()
	})

	ctrl := gomock.NewController(t)
	remoteClient := mock_remote.NewMockClient(ctrl)
	store := replica.New(kv, remoteClient, nil)
	return New(store, remoteClient, session, nil), store, remoteClient
}

func TestSynchronizer_Synchronize_NoSession(t *testing.T) {
	synchronizer, _, _ := newTestSynchronizer(t, remote.StaticSession{})

	// No remote expectations: without a session nothing may be called.
	result, err := synchronizer.Synchronize(context.Background())
	require.NoError(t, err)
	assert.False(t, result.SessionAvailable)
	assert.Zero(t, result.CardsPulled)
	assert.Zero(t, result.CardsPushed)
}

func TestSynchronizer_Synchronize(t *testing.T) {
	ctx := context.Background()
	session := remote.StaticSession{User: "user-1", Token: "token"}
	due := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	t.Run("remote wins on matching cards and local-only cards are pushed", func(t *testing.T) {
		synchronizer, store, remoteClient := newTestSynchronizer(t, session)

		// Shared id with diverged state; the remote copy must prevail.
		localShared := card.Card{ID: "shared", Due: due, State: card.StateLearning, Reps: 1}
		remoteShared := card.Card{ID: "shared", Due: due.AddDate(0, 0, 3), State: card.StateReview, Reps: 4}
		localOnly := card.Card{ID: "local-only", Due: due, State: card.StateNew}
		require.NoError(t, store.PutCard(ctx, localShared))
		require.NoError(t, store.PutCard(ctx, localOnly))

		remoteClient.EXPECT().FetchCards(gomock.Any()).Return([]card.Card{remoteShared}, nil)
		remoteClient.EXPECT().FetchParameters(gomock.Any()).Return(nil, nil)
		remoteClient.EXPECT().UpsertCard(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c card.Card) error {
				assert.Equal(t, "local-only", c.ID)
				return nil
			})

		result, err := synchronizer.Synchronize(ctx)
		require.NoError(t, err)
		assert.True(t, result.SessionAvailable)
		assert.Equal(t, 1, result.CardsPulled)
		assert.Equal(t, 1, result.CardsPushed)

		got, err := store.Card(ctx, "shared")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, card.StateReview, got.State)
		assert.Equal(t, 4, got.Reps)
	})

	t.Run("remote parameters overwrite local ones", func(t *testing.T) {
		synchronizer, store, remoteClient := newTestSynchronizer(t, session)

		localParams := card.DefaultParameters()
		require.NoError(t, store.PutParameters(ctx, localParams))
		remoteParams := card.DefaultParameters()
		remoteParams.RequestRetention = 0.85

		remoteClient.EXPECT().FetchCards(gomock.Any()).Return(nil, nil)
		remoteClient.EXPECT().FetchParameters(gomock.Any()).Return(&remoteParams, nil)

		result, err := synchronizer.Synchronize(ctx)
		require.NoError(t, err)
		assert.True(t, result.ParametersPulled)
		assert.False(t, result.ParametersPushed)

		got, err := store.Parameters(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 0.85, got.RequestRetention)
	})

	t.Run("local parameters are pushed when the remote has none", func(t *testing.T) {
		synchronizer, store, remoteClient := newTestSynchronizer(t, session)

		localParams := card.DefaultParameters()
		require.NoError(t, store.PutParameters(ctx, localParams))

		remoteClient.EXPECT().FetchCards(gomock.Any()).Return(nil, nil)
		remoteClient.EXPECT().FetchParameters(gomock.Any()).Return(nil, nil)
		remoteClient.EXPECT().UpsertParameters(gomock.Any(), localParams).Return(nil)

		result, err := synchronizer.Synchronize(ctx)
		require.NoError(t, err)
		assert.False(t, result.ParametersPulled)
		assert.True(t, result.ParametersPushed)
	})

	t.Run("fetch failure leaves the local store untouched", func(t *testing.T) {
		synchronizer, store, remoteClient := newTestSynchronizer(t, session)

		local := card.Card{ID: "w1", Due: due, State: card.StateReview, Reps: 2}
		require.NoError(t, store.PutCard(ctx, local))

		remoteClient.EXPECT().FetchCards(gomock.Any()).Return(nil, remote.ErrUnavailable)

		_, err := synchronizer.Synchronize(ctx)
		require.ErrorIs(t, err, remote.ErrUnavailable)

		got, err := store.Card(ctx, "w1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 2, got.Reps)
	})

	t.Run("a second run with no local writes is a no-op", func(t *testing.T) {
		synchronizer, _, remoteClient := newTestSynchronizer(t, session)

		remoteCard := card.Card{ID: "w1", Due: due, State: card.StateReview, Reps: 4}

		// Both runs pull the same card and push nothing: everything local
		// is already known to the remote after the first pull.
		remoteClient.EXPECT().FetchCards(gomock.Any()).Return([]card.Card{remoteCard}, nil).Times(2)
		remoteClient.EXPECT().FetchParameters(gomock.Any()).Return(nil, nil).Times(2)

		first, err := synchronizer.Synchronize(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, first.CardsPulled)
		assert.Zero(t, first.CardsPushed)

		second, err := synchronizer.Synchronize(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, second.CardsPulled)
		assert.Zero(t, second.CardsPushed)
	})
}
