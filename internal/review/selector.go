// Package review contains the session core: choosing the next card to
// present and recording graded outcomes.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/flashleaf/flashleaf/internal/card"
	"github.com/flashleaf/flashleaf/internal/remote"
	"github.com/flashleaf/flashleaf/internal/replica"
	"github.com/flashleaf/flashleaf/internal/scheduler"
)

// Selection is the selector's result: the card to present and whether it
// was introduced this session. IsNew travels with the selection so the
// review log records it as captured at selection time.
type Selection struct {
	Card  card.Card
	IsNew bool
}

// Selector decides which card a user sees next. A nil Selection with a nil
// error means the session is exhausted: no known cards and no unlearned
// ids left in any subscribed preset. That is a normal terminal state, not
// an error.
type Selector struct {
	store  *replica.Store
	remote remote.Client
	logger *slog.Logger
	now    func() time.Time
	intn   func(n int) int
}

// NewSelector creates a Selector over the local replica, with the remote
// client as fallback source for presets not yet cached.
func NewSelector(store *replica.Store, remoteClient remote.Client, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{
		store:  store,
		remote: remoteClient,
		logger: logger,
		now:    time.Now,
		intn:   rand.Intn,
	}
}

// Next picks the next card:
//
//  1. the earliest-due known card, even when its due time is still in the
//     future, so a session always makes progress once anything has been
//     introduced;
//  2. otherwise a random unlearned id from the subscribed presets,
//     materialized through sched.NewCard and persisted;
//  3. otherwise nil: the user has finished everything.
func (s *Selector) Next(ctx context.Context, sched scheduler.Scheduler) (*Selection, error) {
	cards, err := s.store.AllCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.AllCards() > %w", err)
	}
	if len(cards) > 0 {
		return &Selection{Card: earliestDue(cards)}, nil
	}

	candidates, err := s.unlearnedCandidates(ctx, cards)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	id := candidates[s.intn(len(candidates))]
	fresh := sched.NewCard(id, s.now())
	if err := s.store.SaveCard(ctx, fresh); err != nil {
		return nil, fmt.Errorf("store.SaveCard(%s) > %w", id, err)
	}
	return &Selection{Card: fresh, IsNew: true}, nil
}

// unlearnedCandidates returns the union of subscribed preset words minus
// already known ids, sorted for a deterministic candidate order.
func (s *Selector) unlearnedCandidates(ctx context.Context, known []card.Card) ([]string, error) {
	subscriptions, err := s.store.Subscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Subscriptions() > %w", err)
	}

	knownIDs := make(map[string]struct{}, len(known))
	for _, c := range known {
		knownIDs[c.ID] = struct{}{}
	}

	seen := make(map[string]struct{})
	var candidates []string
	for _, presetID := range subscriptions {
		preset, err := s.preset(ctx, presetID)
		if err != nil {
			return nil, err
		}
		if preset == nil {
			s.logger.Warn("subscribed preset not found", "id", presetID)
			continue
		}
		for _, wordID := range preset.Words {
			if _, ok := knownIDs[wordID]; ok {
				continue
			}
			if _, ok := seen[wordID]; ok {
				continue
			}
			seen[wordID] = struct{}{}
			candidates = append(candidates, wordID)
		}
	}
	sort.Strings(candidates)
	return candidates, nil
}

// preset resolves a preset locally first, then falls back to the remote
// authority and caches the result. A remote failure degrades to "not
// found" rather than aborting selection.
func (s *Selector) preset(ctx context.Context, id string) (*card.Preset, error) {
	preset, err := s.store.Preset(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.Preset(%s) > %w", id, err)
	}
	if preset != nil {
		return preset, nil
	}

	preset, err = s.remote.FetchPreset(ctx, id)
	if err != nil {
		s.logger.Warn("preset fetch failed", "id", id, "error", err)
		return nil, nil
	}
	if preset == nil {
		return nil, nil
	}
	if err := s.store.SavePreset(ctx, *preset); err != nil {
		return nil, fmt.Errorf("store.SavePreset(%s) > %w", id, err)
	}
	return preset, nil
}

// earliestDue returns the card with the minimum due time, breaking ties by
// the lexicographically smallest id so the choice is deterministic.
func earliestDue(cards []card.Card) card.Card {
	next := cards[0]
	for _, c := range cards[1:] {
		if c.Due.Before(next.Due) || (c.Due.Equal(next.Due) && c.ID < next.ID) {
			next = c
		}
	}
	return next
}
