package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/flashleaf/flashleaf/internal/card"
	"github.com/flashleaf/flashleaf/internal/inference"
	"github.com/flashleaf/flashleaf/internal/remote"
	"github.com/flashleaf/flashleaf/internal/replica"
	"github.com/flashleaf/flashleaf/internal/scheduler"
	"github.com/flashleaf/flashleaf/internal/syncer"
	"github.com/flashleaf/flashleaf/internal/vocab"
)

// ErrCardNotFound is returned when a grading targets an id with no local
// card. Grading must never fabricate a record; the cycle aborts instead.
var ErrCardNotFound = errors.New("card not found")

// ErrWordNotFound is returned when the vocabulary database has no entry
// for a selected card's id.
var ErrWordNotFound = errors.New("word not found")

// Prompt is the material presented for one review cycle.
type Prompt struct {
	Word     string
	Question inference.Question
}

// SchedulerFactory builds a scheduling engine for a set of parameters.
type SchedulerFactory func(params card.Parameters) scheduler.Scheduler

// Session orchestrates a review session: initialize, select, prompt,
// record, repeat. One Session exists per device session; all shared state
// lives in explicit collaborators, not package globals.
type Session struct {
	store        *replica.Store
	remote       remote.Client
	synchronizer *syncer.Synchronizer
	newScheduler SchedulerFactory
	selector     *Selector
	vocab        vocab.Repository
	generator    inference.Client
	logger       *slog.Logger
	now          func() time.Time

	sched scheduler.Scheduler
}

// NewSession wires a Session from its collaborators. Call Initialize
// before the first selection.
func NewSession(
	store *replica.Store,
	remoteClient remote.Client,
	synchronizer *syncer.Synchronizer,
	newScheduler SchedulerFactory,
	vocabRepo vocab.Repository,
	generator inference.Client,
	logger *slog.Logger,
) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		store:        store,
		remote:       remoteClient,
		synchronizer: synchronizer,
		newScheduler: newScheduler,
		selector:     NewSelector(store, remoteClient, logger),
		vocab:        vocabRepo,
		generator:    generator,
		logger:       logger,
		now:          time.Now,
	}
}

// Initialize loads (or creates) the scheduler parameters and reconciles
// the local replica with the remote authority. Synchronization is
// best-effort: its failure is logged and the session continues on local
// state. Initialize must complete before the first Next call so selection
// never runs against a stale local view.
func (s *Session) Initialize(ctx context.Context) (*syncer.Result, error) {
	params, err := s.store.Parameters(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Parameters() > %w", err)
	}
	if params == nil {
		defaults := card.DefaultParameters()
		if err := s.store.SaveParameters(ctx, defaults); err != nil {
			return nil, fmt.Errorf("store.SaveParameters() > %w", err)
		}
		params = &defaults
	}

	result, err := s.synchronizer.Synchronize(ctx)
	if err != nil {
		s.logger.Warn("synchronization failed, continuing on local state", "error", err)
	}

	// Parameters may have been overwritten by the pull; reload so the
	// engine uses what the remote decided.
	synced, err := s.store.Parameters(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Parameters() > %w", err)
	}
	if synced != nil {
		params = synced
	}
	s.sched = s.newScheduler(*params)
	return result, nil
}

// Next returns the next selection, or nil when the session is exhausted.
func (s *Session) Next(ctx context.Context) (*Selection, error) {
	if s.sched == nil {
		return nil, fmt.Errorf("session not initialized")
	}
	return s.selector.Next(ctx, s.sched)
}

// Prompt looks up the selected card's word and generates a question for
// it. Failures keep the selection pending: a lookup miss is
// ErrWordNotFound, generator failures (including
// inference.ErrMalformedResponse) propagate so the caller can regenerate
// for the same card.
func (s *Session) Prompt(ctx context.Context, selection *Selection) (*Prompt, error) {
	word, err := s.vocab.Find(ctx, selection.Card.ID)
	if err != nil {
		return nil, fmt.Errorf("vocab.Find(%s) > %w", selection.Card.ID, err)
	}
	if word == nil {
		return nil, fmt.Errorf("%w: %s", ErrWordNotFound, selection.Card.ID)
	}

	question, err := s.generator.GenerateQuestion(ctx, word.Text)
	if err != nil {
		return nil, fmt.Errorf("generator.GenerateQuestion(%s) > %w", word.Text, err)
	}
	return &Prompt{Word: word.Text, Question: question}, nil
}

// Record applies a grading to the selected card: runs the scheduler,
// persists the updated card (which cascades to the remote best-effort)
// and appends the review log carrying the selection-time IsNew flag.
// Unlike the cascaded card push, a log append failure is returned: losing
// a review outcome is a correctness issue, and the caller may retry the
// grading.
func (s *Session) Record(ctx context.Context, selection *Selection, rating card.Rating) (*card.Card, error) {
	if s.sched == nil {
		return nil, fmt.Errorf("session not initialized")
	}

	current, err := s.store.Card(ctx, selection.Card.ID)
	if err != nil {
		return nil, fmt.Errorf("store.Card(%s) > %w", selection.Card.ID, err)
	}
	if current == nil {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, selection.Card.ID)
	}

	updated, log := s.sched.Next(*current, s.now(), rating)
	log.CardID = current.ID
	log.IsNew = selection.IsNew

	if err := s.store.SaveCard(ctx, updated); err != nil {
		return nil, fmt.Errorf("store.SaveCard(%s) > %w", updated.ID, err)
	}
	if err := s.remote.AppendReviewLog(ctx, log); err != nil {
		return nil, fmt.Errorf("remote.AppendReviewLog(%s) > %w", log.CardID, err)
	}
	return &updated, nil
}

// Forget removes a card locally and propagates the removal to the remote
// authority.
func (s *Session) Forget(ctx context.Context, id string) error {
	if err := s.store.DeleteCard(ctx, id); err != nil {
		return fmt.Errorf("store.DeleteCard(%s) > %w", id, err)
	}
	return nil
}

// RatingForAnswer maps a multiple-choice answer to a grade: a correct
// pick is Easy, anything else Again.
func RatingForAnswer(correct bool) card.Rating {
	if correct {
		return card.RatingEasy
	}
	return card.RatingAgain
}
