// Package syncer reconciles the local replica with the remote authority at
// session start. The merge is one-directional: the remote always wins on a
// matching record, and local-only records are uploaded afterwards. No
// remote record is ever deleted because a local one differs.
package syncer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flashleaf/flashleaf/internal/remote"
	"github.com/flashleaf/flashleaf/internal/replica"
)

// Result tracks what one synchronization run did.
type Result struct {
	CardsPulled      int
	CardsPushed      int
	ParametersPulled bool
	ParametersPushed bool
	SessionAvailable bool
}

// Synchronizer merges the local replica and the remote authority.
type Synchronizer struct {
	store   *replica.Store
	remote  remote.Client
	session remote.Session
	logger  *slog.Logger
}

// New creates a Synchronizer.
func New(store *replica.Store, remoteClient remote.Client, session remote.Session, logger *slog.Logger) *Synchronizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synchronizer{
		store:   store,
		remote:  remoteClient,
		session: session,
		logger:  logger,
	}
}

// Synchronize runs the one-directional merge. It is idempotent and safe to
// re-run at any time: running it twice with no intervening local writes is
// a no-op on the second run. Synchronization is best-effort; a failure
// leaves both stores valid and is returned for the caller to log, not to
// abort on. Partial completion never corrupts either store.
func (s *Synchronizer) Synchronize(ctx context.Context) (*Result, error) {
	result := &Result{}
	if _, ok := s.session.UserID(); !ok {
		s.logger.Debug("no authenticated session, skipping synchronization")
		return result, nil
	}
	result.SessionAvailable = true

	// Pull first: pushing before knowing the remote's record set would
	// re-upload records the remote already holds.
	remoteCards, err := s.remote.FetchCards(ctx)
	if err != nil {
		return result, fmt.Errorf("remote.FetchCards() > %w", err)
	}
	remoteIDs := make(map[string]struct{}, len(remoteCards))
	for _, c := range remoteCards {
		// Remote wins: overwrite the local record unconditionally.
		if err := s.store.PutCard(ctx, c); err != nil {
			return result, fmt.Errorf("store.PutCard(%s) > %w", c.ID, err)
		}
		remoteIDs[c.ID] = struct{}{}
		result.CardsPulled++
	}

	remoteParams, err := s.remote.FetchParameters(ctx)
	if err != nil {
		return result, fmt.Errorf("remote.FetchParameters() > %w", err)
	}
	if remoteParams != nil {
		if err := s.store.PutParameters(ctx, *remoteParams); err != nil {
			return result, fmt.Errorf("store.PutParameters() > %w", err)
		}
		result.ParametersPulled = true
	}

	localCards, err := s.store.AllCards(ctx)
	if err != nil {
		return result, fmt.Errorf("store.AllCards() > %w", err)
	}
	for _, c := range localCards {
		if _, ok := remoteIDs[c.ID]; ok {
			continue
		}
		if err := s.remote.UpsertCard(ctx, c); err != nil {
			return result, fmt.Errorf("remote.UpsertCard(%s) > %w", c.ID, err)
		}
		result.CardsPushed++
	}

	if remoteParams == nil {
		localParams, err := s.store.Parameters(ctx)
		if err != nil {
			return result, fmt.Errorf("store.Parameters() > %w", err)
		}
		if localParams != nil {
			if err := s.remote.UpsertParameters(ctx, *localParams); err != nil {
				return result, fmt.Errorf("remote.UpsertParameters() > %w", err)
			}
			result.ParametersPushed = true
		}
	}

	return result, nil
}
