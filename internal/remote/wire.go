package remote

import (
	"fmt"
	"time"

	"github.com/flashleaf/flashleaf/internal/card"
)

// Wire representations mirror the remote schema: snake_case columns and
// RFC 3339 timestamp strings.

type wireCard struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Due           string  `json:"due"`
	Stability     float64 `json:"stability"`
	Difficulty    float64 `json:"difficulty"`
	ElapsedDays   int     `json:"elapsed_days"`
	ScheduledDays int     `json:"scheduled_days"`
	Reps          int     `json:"reps"`
	Lapses        int     `json:"lapses"`
	State         int     `json:"state"`
	LastReview    *string `json:"last_review"`
}

func cardToWire(c card.Card, userID string) wireCard {
	w := wireCard{
		ID:            c.ID,
		UserID:        userID,
		Due:           c.Due.UTC().Format(time.RFC3339Nano),
		Stability:     c.Stability,
		Difficulty:    c.Difficulty,
		ElapsedDays:   c.ElapsedDays,
		ScheduledDays: c.ScheduledDays,
		Reps:          c.Reps,
		Lapses:        c.Lapses,
		State:         int(c.State),
	}
	if c.LastReview != nil {
		lastReview := c.LastReview.UTC().Format(time.RFC3339Nano)
		w.LastReview = &lastReview
	}
	return w
}

func (w wireCard) toCard() (card.Card, error) {
	due, err := time.Parse(time.RFC3339Nano, w.Due)
	if err != nil {
		return card.Card{}, fmt.Errorf("time.Parse(due) > %w", err)
	}
	c := card.Card{
		ID:            w.ID,
		Due:           due,
		Stability:     w.Stability,
		Difficulty:    w.Difficulty,
		ElapsedDays:   w.ElapsedDays,
		ScheduledDays: w.ScheduledDays,
		Reps:          w.Reps,
		Lapses:        w.Lapses,
		State:         card.State(w.State),
	}
	if w.LastReview != nil {
		lastReview, err := time.Parse(time.RFC3339Nano, *w.LastReview)
		if err != nil {
			return card.Card{}, fmt.Errorf("time.Parse(last_review) > %w", err)
		}
		c.LastReview = &lastReview
	}
	return c, nil
}

type wireParameters struct {
	UserID     string          `json:"user_id"`
	Parameters card.Parameters `json:"parameters"`
}

type wireReviewLog struct {
	CardID          string  `json:"card_id"`
	UserID          string  `json:"user_id"`
	Rating          int     `json:"rating"`
	State           int     `json:"state"`
	Due             string  `json:"due"`
	Stability       float64 `json:"stability"`
	Difficulty      float64 `json:"difficulty"`
	ElapsedDays     int     `json:"elapsed_days"`
	LastElapsedDays int     `json:"last_elapsed_days"`
	ScheduledDays   int     `json:"scheduled_days"`
	Review          string  `json:"review"`
	IsNew           bool    `json:"is_new"`
}

func reviewLogToWire(log card.ReviewLog, userID string) wireReviewLog {
	return wireReviewLog{
		CardID:          log.CardID,
		UserID:          userID,
		Rating:          int(log.Rating),
		State:           int(log.State),
		Due:             log.Due.UTC().Format(time.RFC3339Nano),
		Stability:       log.Stability,
		Difficulty:      log.Difficulty,
		ElapsedDays:     log.ElapsedDays,
		LastElapsedDays: log.LastElapsedDays,
		ScheduledDays:   log.ScheduledDays,
		Review:          log.Review.UTC().Format(time.RFC3339Nano),
		IsNew:           log.IsNew,
	}
}

type wirePreset struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	OwnerID     *string `json:"owner_id"`
	CreatedAt   *string `json:"created_at"`
	IsPublic    bool    `json:"is_public"`
}

func (w wirePreset) toPreset(words []string) (card.Preset, error) {
	p := card.Preset{
		ID:       w.ID,
		Name:     w.Name,
		IsPublic: w.IsPublic,
		Words:    words,
	}
	if w.Description != nil {
		p.Description = *w.Description
	}
	if w.OwnerID != nil {
		p.OwnerID = *w.OwnerID
	}
	if w.CreatedAt != nil {
		createdAt, err := time.Parse(time.RFC3339Nano, *w.CreatedAt)
		if err != nil {
			return card.Preset{}, fmt.Errorf("time.Parse(created_at) > %w", err)
		}
		p.CreatedAt = &createdAt
	}
	return p, nil
}

type wirePresetWord struct {
	PresetID string `json:"preset_id"`
	WordID   string `json:"word_id"`
}
