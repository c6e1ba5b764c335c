package review

import (
	"time"

	"github.com/flashleaf/flashleaf/internal/card"
)

// Summary aggregates the local replica's review state for display.
type Summary struct {
	Total      int `json:"total"`
	DueNow     int `json:"due_now"`
	New        int `json:"new"`
	Learning   int `json:"learning"`
	Review     int `json:"review"`
	Relearning int `json:"relearning"`
}

// Summarize counts cards by state and how many are due at now.
func Summarize(cards []card.Card, now time.Time) Summary {
	var summary Summary
	summary.Total = len(cards)
	for _, c := range cards {
		if !c.Due.After(now) {
			summary.DueNow++
		}
		switch c.State {
		case card.StateNew:
			summary.New++
		case card.StateLearning:
			summary.Learning++
		case card.StateReview:
			summary.Review++
		case card.StateRelearning:
			summary.Relearning++
		}
	}
	return summary
}
