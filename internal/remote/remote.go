// Package remote provides the client for the remote authority holding the
// canonical copy of cards, parameters, review logs and presets.
package remote

import (
	"context"
	"errors"

	"github.com/flashleaf/flashleaf/internal/card"
)

// ErrUnavailable marks a network, auth or service failure on a remote
// call. Best-effort push paths catch it and degrade silently.
var ErrUnavailable = errors.New("remote authority unavailable")

//go:generate mockgen -source=remote.go -destination=../mocks/remote/mock_client.go -package=mock_remote Client

// Client is the remote authority. Every operation requires an
// authenticated session; without one, operations are no-ops returning
// empty results rather than failing loudly.
type Client interface {
	FetchCards(ctx context.Context) ([]card.Card, error)
	UpsertCard(ctx context.Context, c card.Card) error
	DeleteCard(ctx context.Context, id string) error
	FetchParameters(ctx context.Context) (*card.Parameters, error)
	UpsertParameters(ctx context.Context, params card.Parameters) error
	AppendReviewLog(ctx context.Context, log card.ReviewLog) error
	FetchPreset(ctx context.Context, id string) (*card.Preset, error)
	FetchPublicPresets(ctx context.Context) ([]card.Preset, error)
}

// Session supplies the authenticated identity for remote calls.
// Authentication itself is external; this interface only reports its state.
type Session interface {
	// UserID returns the authenticated user id, or false when no session
	// exists.
	UserID() (string, bool)
	// AccessToken returns the bearer token for the current session.
	AccessToken() string
}

// StaticSession is a Session backed by fixed credentials, typically read
// from configuration.
type StaticSession struct {
	User  string
	Token string
}

func (s StaticSession) UserID() (string, bool) {
	if s.User == "" || s.Token == "" {
		return "", false
	}
	return s.User, true
}

func (s StaticSession) AccessToken() string {
	return s.Token
}
