package scheduler

import (
	"hash/fnv"
	"math"
	"strconv"
	"time"

	"github.com/flashleaf/flashleaf/internal/card"
)

const (
	defaultEasinessFactor = 2.5
	minEasinessFactor     = 1.3

	// A failed card comes back within the same session rather than tomorrow.
	againReviewDelay = 10 * time.Minute
)

// SM2 is the default scheduling engine, an SM-2 derivative. It stores the
// easiness factor in the card's Difficulty field and mirrors the current
// interval into Stability; both stay opaque to the rest of the system.
type SM2 struct {
	params card.Parameters
}

// NewSM2 creates a scheduler with the given per-user parameters.
func NewSM2(params card.Parameters) *SM2 {
	return &SM2{params: params}
}

// NewCard returns a card with zero state, due immediately.
func (s *SM2) NewCard(id string, now time.Time) card.Card {
	return card.Card{
		ID:    id,
		Due:   now,
		State: card.StateNew,
	}
}

// Next applies a grading and returns the updated card and the log entry
// snapshotting the card before the review.
func (s *SM2) Next(c card.Card, now time.Time, rating card.Rating) (card.Card, card.ReviewLog) {
	elapsed := 0
	if c.LastReview != nil {
		elapsed = int(now.Sub(*c.LastReview).Hours() / 24)
		if elapsed < 0 {
			elapsed = 0
		}
	}

	log := card.ReviewLog{
		CardID:          c.ID,
		Rating:          rating,
		State:           c.State,
		Due:             c.Due,
		Stability:       c.Stability,
		Difficulty:      c.Difficulty,
		ElapsedDays:     elapsed,
		LastElapsedDays: c.ElapsedDays,
		ScheduledDays:   c.ScheduledDays,
		Review:          now,
	}

	updated := c
	updated.Reps++
	updated.ElapsedDays = elapsed
	updated.Difficulty = updateEasinessFactor(c.Difficulty, rating)
	lastReview := now
	updated.LastReview = &lastReview

	if rating == card.RatingAgain {
		if c.State == card.StateReview || c.State == card.StateRelearning {
			updated.Lapses++
			updated.State = card.StateRelearning
		} else {
			updated.State = card.StateLearning
		}
		updated.ScheduledDays = lapseInterval(c.ScheduledDays)
		updated.Stability = float64(updated.ScheduledDays)
		updated.Due = now.Add(againReviewDelay)
		return updated, log
	}

	updated.State = card.StateReview
	interval := s.nextInterval(c.ScheduledDays, updated.Reps, updated.Difficulty, rating)
	if s.params.EnableFuzz {
		interval = fuzzInterval(interval, c.ID, updated.Reps)
	}
	if s.params.MaximumInterval > 0 && interval > s.params.MaximumInterval {
		interval = s.params.MaximumInterval
	}
	updated.ScheduledDays = interval
	updated.Stability = float64(interval)
	updated.Due = now.AddDate(0, 0, interval)
	return updated, log
}

// updateEasinessFactor applies the standard SM-2 delta for the quality
// implied by the rating, clamped at the minimum.
func updateEasinessFactor(ef float64, rating card.Rating) float64 {
	if ef == 0 {
		ef = defaultEasinessFactor
	}
	q := quality(rating)
	delta := 0.1 - (5-q)*(0.08+(5-q)*0.02)
	return math.Max(ef+delta, minEasinessFactor)
}

func quality(rating card.Rating) float64 {
	switch rating {
	case card.RatingAgain:
		return 1
	case card.RatingHard:
		return 3
	case card.RatingGood:
		return 4
	default:
		return 5
	}
}

func (s *SM2) nextInterval(lastInterval, reps int, ef float64, rating card.Rating) int {
	switch reps {
	case 1:
		if rating == card.RatingEasy {
			return 4
		}
		return 1
	case 2:
		return 6
	}
	if lastInterval == 0 {
		lastInterval = 6
	}
	modifier := ef
	switch rating {
	case card.RatingHard:
		modifier = 1.2
	case card.RatingEasy:
		modifier = ef * 1.3
	}
	return int(math.Ceil(float64(lastInterval) * modifier))
}

// lapseInterval reduces the interval proportionally instead of resetting
// well-learned cards all the way back to one day.
func lapseInterval(lastInterval int) int {
	if lastInterval <= 2 {
		return 1
	}
	interval := int(math.Ceil(float64(lastInterval) * 0.5))
	if interval < 1 {
		return 1
	}
	return interval
}

// fuzzInterval spreads due dates by up to 5% so cards introduced together
// drift apart. The jitter is derived from the card id and rep count, which
// keeps Next a pure function of its inputs.
func fuzzInterval(interval int, id string, reps int) int {
	if interval < 3 {
		return interval
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	_, _ = h.Write([]byte(strconv.Itoa(reps)))
	jitter := float64(h.Sum32()%11)/100.0 - 0.05
	fuzzed := int(math.Round(float64(interval) * (1 + jitter)))
	if fuzzed < 1 {
		return 1
	}
	return fuzzed
}
