// Package replica provides the local replica of the user's review state:
// a durable key-value map of cards, scheduler parameters and cached
// presets. It is the source of truth while offline; every mutating card or
// parameter write additionally triggers a best-effort push to the remote
// authority that never surfaces failures to the caller.
package replica

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/flashleaf/flashleaf/internal/card"
	"github.com/flashleaf/flashleaf/internal/kvstore"
	"github.com/flashleaf/flashleaf/internal/remote"
)

const (
	cardKeyPrefix   = "card:"
	presetKeyPrefix = "preset:"
	parametersKey   = "fsrs-parameters"
	// Subscription ids are local-only; they are never synced to the
	// remote authority.
	subscriptionsKey = "selected-presets"
)

// Store is the local replica store. One instance is constructed per
// session and shared by every component.
type Store struct {
	kv     kvstore.Store
	remote remote.Client
	queue  *pushQueue
	logger *slog.Logger
}

// New creates a Store over kv that pushes mutations to remoteClient in the
// background.
func New(kv kvstore.Store, remoteClient remote.Client, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		kv:     kv,
		remote: remoteClient,
		queue:  newPushQueue(),
		logger: logger,
	}
}

// SaveCard writes a card locally and schedules a best-effort remote
// upsert. A remote failure is logged and swallowed; the local write alone
// decides this call's success.
func (s *Store) SaveCard(ctx context.Context, c card.Card) error {
	if err := s.put(ctx, cardKeyPrefix+c.ID, c); err != nil {
		return fmt.Errorf("put(card) > %w", err)
	}
	s.queue.enqueue(cardKeyPrefix+c.ID, func(ctx context.Context) {
		if err := s.remote.UpsertCard(ctx, c); err != nil {
			s.logger.Warn("best-effort card push failed", "id", c.ID, "error", err)
		}
	})
	return nil
}

// Card returns the card with the given id, or (nil, nil) when absent.
func (s *Store) Card(ctx context.Context, id string) (*card.Card, error) {
	var c card.Card
	found, err := s.get(ctx, cardKeyPrefix+id, &c)
	if err != nil {
		return nil, fmt.Errorf("get(card) > %w", err)
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

// AllCards returns every locally known card, in id order.
func (s *Store) AllCards(ctx context.Context) ([]card.Card, error) {
	keys, err := s.kv.Keys(ctx, cardKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("kv.Keys(card) > %w", err)
	}
	cards := make([]card.Card, 0, len(keys))
	for _, key := range keys {
		c, err := s.Card(ctx, strings.TrimPrefix(key, cardKeyPrefix))
		if err != nil {
			return nil, err
		}
		if c != nil {
			cards = append(cards, *c)
		}
	}
	return cards, nil
}

// DeleteCard removes a card locally and schedules the matching remote
// deletion. The remote delete shares the card's queue key, so it cannot
// overtake an earlier upsert of the same card.
func (s *Store) DeleteCard(ctx context.Context, id string) error {
	if err := s.kv.Delete(ctx, cardKeyPrefix+id); err != nil {
		return fmt.Errorf("kv.Delete(card) > %w", err)
	}
	s.queue.enqueue(cardKeyPrefix+id, func(ctx context.Context) {
		if err := s.remote.DeleteCard(ctx, id); err != nil {
			s.logger.Warn("best-effort card deletion push failed", "id", id, "error", err)
		}
	})
	return nil
}

// SaveParameters writes the parameters singleton locally and schedules a
// best-effort remote upsert.
func (s *Store) SaveParameters(ctx context.Context, params card.Parameters) error {
	if err := s.put(ctx, parametersKey, params); err != nil {
		return fmt.Errorf("put(parameters) > %w", err)
	}
	s.queue.enqueue(parametersKey, func(ctx context.Context) {
		if err := s.remote.UpsertParameters(ctx, params); err != nil {
			s.logger.Warn("best-effort parameters push failed", "error", err)
		}
	})
	return nil
}

// Parameters returns the stored parameters, or (nil, nil) when none were
// ever saved.
func (s *Store) Parameters(ctx context.Context) (*card.Parameters, error) {
	var params card.Parameters
	found, err := s.get(ctx, parametersKey, &params)
	if err != nil {
		return nil, fmt.Errorf("get(parameters) > %w", err)
	}
	if !found {
		return nil, nil
	}
	return &params, nil
}

// PutCard writes a card locally without triggering a remote push. The
// reconciler uses it to materialize records pulled from the remote.
func (s *Store) PutCard(ctx context.Context, c card.Card) error {
	if err := s.put(ctx, cardKeyPrefix+c.ID, c); err != nil {
		return fmt.Errorf("put(card) > %w", err)
	}
	return nil
}

// PutParameters writes the parameters singleton without a remote push.
func (s *Store) PutParameters(ctx context.Context, params card.Parameters) error {
	if err := s.put(ctx, parametersKey, params); err != nil {
		return fmt.Errorf("put(parameters) > %w", err)
	}
	return nil
}

// SavePreset caches a preset locally. Presets are remote-owned; no push.
func (s *Store) SavePreset(ctx context.Context, p card.Preset) error {
	if err := s.put(ctx, presetKeyPrefix+p.ID, p); err != nil {
		return fmt.Errorf("put(preset) > %w", err)
	}
	return nil
}

// Preset returns the cached preset with the given id, or (nil, nil).
func (s *Store) Preset(ctx context.Context, id string) (*card.Preset, error) {
	var p card.Preset
	found, err := s.get(ctx, presetKeyPrefix+id, &p)
	if err != nil {
		return nil, fmt.Errorf("get(preset) > %w", err)
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

// AllPresets returns every locally cached preset.
func (s *Store) AllPresets(ctx context.Context) ([]card.Preset, error) {
	keys, err := s.kv.Keys(ctx, presetKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("kv.Keys(preset) > %w", err)
	}
	presets := make([]card.Preset, 0, len(keys))
	for _, key := range keys {
		p, err := s.Preset(ctx, strings.TrimPrefix(key, presetKeyPrefix))
		if err != nil {
			return nil, err
		}
		if p != nil {
			presets = append(presets, *p)
		}
	}
	return presets, nil
}

// AddSubscription adds a preset id to the local subscription set.
// Adding an already subscribed id is a no-op.
func (s *Store) AddSubscription(ctx context.Context, presetID string) error {
	ids, err := s.Subscriptions(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == presetID {
			return nil
		}
	}
	ids = append(ids, presetID)
	sort.Strings(ids)
	if err := s.put(ctx, subscriptionsKey, ids); err != nil {
		return fmt.Errorf("put(subscriptions) > %w", err)
	}
	return nil
}

// RemoveSubscription removes a preset id from the local subscription set.
func (s *Store) RemoveSubscription(ctx context.Context, presetID string) error {
	ids, err := s.Subscriptions(ctx)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != presetID {
			kept = append(kept, id)
		}
	}
	if err := s.put(ctx, subscriptionsKey, kept); err != nil {
		return fmt.Errorf("put(subscriptions) > %w", err)
	}
	return nil
}

// Subscriptions returns the preset ids the user has opted into.
func (s *Store) Subscriptions(ctx context.Context) ([]string, error) {
	var ids []string
	if _, err := s.get(ctx, subscriptionsKey, &ids); err != nil {
		return nil, fmt.Errorf("get(subscriptions) > %w", err)
	}
	return ids, nil
}

// Wait blocks until every scheduled best-effort push has run. Call it
// before process exit so queued pushes are not dropped.
func (s *Store) Wait() {
	s.queue.wait()
}

func (s *Store) put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("kv.Set > %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string, value any) (bool, error) {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("kv.Get > %w", err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return true, nil
}
