package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashleaf/flashleaf/internal/card"
)

const testPresetID = "7f6b3f2a-0cbe-4f6e-9d3a-1f1b2c3d4e5f"

func newTestClient(t *testing.T, session Session, handler http.HandlerFunc) *RESTClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewRESTClient(server.URL, "public-api-key", session, 5*time.Second, DefaultRetryAttempts)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestRESTClient_NoSession(t *testing.T) {
	ctx := context.Background()
	var requests atomic.Int32
	client := newTestClient(t, StaticSession{}, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})

	cards, err := client.FetchCards(ctx)
	require.NoError(t, err)
	assert.Nil(t, cards)

	require.NoError(t, client.UpsertCard(ctx, card.Card{ID: "w1"}))
	require.NoError(t, client.DeleteCard(ctx, "w1"))
	require.NoError(t, client.UpsertParameters(ctx, card.DefaultParameters()))
	require.NoError(t, client.AppendReviewLog(ctx, card.ReviewLog{CardID: "w1"}))

	params, err := client.FetchParameters(ctx)
	require.NoError(t, err)
	assert.Nil(t, params)

	preset, err := client.FetchPreset(ctx, testPresetID)
	require.NoError(t, err)
	assert.Nil(t, preset)

	presets, err := client.FetchPublicPresets(ctx)
	require.NoError(t, err)
	assert.Nil(t, presets)

	// Without a session nothing may touch the network.
	assert.Zero(t, requests.Load())
}

func TestRESTClient_FetchCards(t *testing.T) {
	ctx := context.Background()
	session := StaticSession{User: "user-1", Token: "access-token"}

	client := newTestClient(t, session, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/cards", r.URL.Path)
		assert.Equal(t, "eq.user-1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "public-api-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": "w1",
				"user_id": "user-1",
				"due": "2026-02-10T08:00:00Z",
				"stability": 6,
				"difficulty": 2.5,
				"elapsed_days": 3,
				"scheduled_days": 6,
				"reps": 4,
				"lapses": 1,
				"state": 2,
				"last_review": "2026-02-04T08:00:00Z"
			}
		]`))
	})

	cards, err := client.FetchCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	got := cards[0]
	assert.Equal(t, "w1", got.ID)
	assert.Equal(t, card.StateReview, got.State)
	assert.Equal(t, 4, got.Reps)
	assert.Equal(t, 6, got.ScheduledDays)
	assert.True(t, got.Due.Equal(time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)))
	require.NotNil(t, got.LastReview)
	assert.True(t, got.LastReview.Equal(time.Date(2026, 2, 4, 8, 0, 0, 0, time.UTC)))
}

func TestRESTClient_UpsertCard(t *testing.T) {
	ctx := context.Background()
	session := StaticSession{User: "user-1", Token: "access-token"}
	due := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	client := newTestClient(t, session, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/cards", r.URL.Path)
		assert.Equal(t, "id,user_id", r.URL.Query().Get("on_conflict"))
		assert.Equal(t, "resolution=merge-duplicates", r.Header.Get("Prefer"))

		var rows []wireCard
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "w1", rows[0].ID)
		assert.Equal(t, "user-1", rows[0].UserID)
		assert.Equal(t, 2, rows[0].State)

		w.WriteHeader(http.StatusCreated)
	})

	err := client.UpsertCard(ctx, card.Card{ID: "w1", Due: due, State: card.StateReview})
	require.NoError(t, err)
}

func TestRESTClient_DeleteCard(t *testing.T) {
	ctx := context.Background()
	session := StaticSession{User: "user-1", Token: "access-token"}

	client := newTestClient(t, session, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "eq.w1", r.URL.Query().Get("id"))
		assert.Equal(t, "eq.user-1", r.URL.Query().Get("user_id"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteCard(ctx, "w1"))
}

func TestRESTClient_FetchParameters(t *testing.T) {
	ctx := context.Background()
	session := StaticSession{User: "user-1", Token: "access-token"}

	t.Run("absent parameters return nil", func(t *testing.T) {
		client := newTestClient(t, session, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		})

		params, err := client.FetchParameters(ctx)
		require.NoError(t, err)
		assert.Nil(t, params)
	})

	t.Run("returns the stored parameters", func(t *testing.T) {
		client := newTestClient(t, session, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/v1/fsrs_parameters", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"user_id":"user-1","parameters":{"request_retention":0.85,"maximum_interval":1000,"enable_fuzz":true}}]`))
		})

		params, err := client.FetchParameters(ctx)
		require.NoError(t, err)
		require.NotNil(t, params)
		assert.Equal(t, 0.85, params.RequestRetention)
		assert.Equal(t, 1000, params.MaximumInterval)
		assert.True(t, params.EnableFuzz)
	})
}

func TestRESTClient_AppendReviewLog(t *testing.T) {
	ctx := context.Background()
	session := StaticSession{User: "user-1", Token: "access-token"}
	review := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	client := newTestClient(t, session, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/review_logs", r.URL.Path)

		var rows []wireReviewLog
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "w1", rows[0].CardID)
		assert.Equal(t, "user-1", rows[0].UserID)
		assert.True(t, rows[0].IsNew)

		w.WriteHeader(http.StatusCreated)
	})

	log := card.ReviewLog{CardID: "w1", Rating: card.RatingEasy, Review: review, IsNew: true}
	require.NoError(t, client.AppendReviewLog(ctx, log))
}

func TestRESTClient_FetchPreset(t *testing.T) {
	ctx := context.Background()
	session := StaticSession{User: "user-1", Token: "access-token"}

	t.Run("rejects a malformed preset id", func(t *testing.T) {
		client := newTestClient(t, session, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected for an invalid id")
		})

		_, err := client.FetchPreset(ctx, "not-a-uuid")
		require.Error(t, err)
	})

	t.Run("joins the preset with its words", func(t *testing.T) {
		client := newTestClient(t, session, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch r.URL.Path {
			case "/rest/v1/presets":
				assert.Equal(t, "eq."+testPresetID, r.URL.Query().Get("id"))
				_, _ = w.Write([]byte(`[{"id":"` + testPresetID + `","name":"Core","description":"Starter words","is_public":true}]`))
			case "/rest/v1/preset_words":
				assert.Equal(t, "eq."+testPresetID, r.URL.Query().Get("preset_id"))
				_, _ = w.Write([]byte(`[{"preset_id":"` + testPresetID + `","word_id":"w1"},{"preset_id":"` + testPresetID + `","word_id":"w2"}]`))
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		})

		preset, err := client.FetchPreset(ctx, testPresetID)
		require.NoError(t, err)
		require.NotNil(t, preset)
		assert.Equal(t, "Core", preset.Name)
		assert.Equal(t, "Starter words", preset.Description)
		assert.Equal(t, []string{"w1", "w2"}, preset.Words)
	})

	t.Run("unknown preset returns nil", func(t *testing.T) {
		client := newTestClient(t, session, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		})

		preset, err := client.FetchPreset(ctx, testPresetID)
		require.NoError(t, err)
		assert.Nil(t, preset)
	})
}

func TestRESTClient_Retry(t *testing.T) {
	ctx := context.Background()
	session := StaticSession{User: "user-1", Token: "access-token"}

	t.Run("retries server errors until success", func(t *testing.T) {
		var requests atomic.Int32
		client := newTestClient(t, session, func(w http.ResponseWriter, r *http.Request) {
			if requests.Add(1) <= 2 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		})

		cards, err := client.FetchCards(ctx)
		require.NoError(t, err)
		assert.Empty(t, cards)
		assert.Equal(t, int32(3), requests.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var requests atomic.Int32
		client := newTestClient(t, session, func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		})

		_, err := client.FetchCards(ctx)
		require.ErrorIs(t, err, ErrUnavailable)
		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("exhausted retries surface as unavailable", func(t *testing.T) {
		client := newTestClient(t, session, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.FetchCards(ctx)
		require.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), want: true},
		{name: "timeout", err: errors.New("read tcp: i/o timeout"), want: true},
		{name: "server error", err: errors.New("response error 503: unavailable"), want: true},
		{name: "rate limited", err: errors.New("response error 429: too many requests"), want: true},
		{name: "client error", err: errors.New("response error 400: bad request"), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}
