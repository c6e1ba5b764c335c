// Package scheduler defines the boundary to the spaced-repetition formula.
// The numeric retention model is pluggable; this package only fixes the
// contract a scheduling engine has to satisfy.
package scheduler

import (
	"time"

	"github.com/flashleaf/flashleaf/internal/card"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock_scheduler.go -package=mock_scheduler Scheduler

// Scheduler computes the next review state of a card. Implementations must
// be pure given their parameters: the same card, time and rating always
// produce the same result.
type Scheduler interface {
	// Next applies a grading to a card and returns the updated card plus
	// the immutable log entry describing the review. The returned log does
	// not have IsNew set; the caller owns that flag.
	Next(c card.Card, now time.Time, rating card.Rating) (card.Card, card.ReviewLog)

	// NewCard returns a fresh card for an item that has never been
	// reviewed. Due is set to now so the card is immediately eligible.
	NewCard(id string, now time.Time) card.Card
}
