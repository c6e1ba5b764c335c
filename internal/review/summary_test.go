package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flashleaf/flashleaf/internal/card"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		cards []card.Card
		want  Summary
	}{
		{
			name: "empty replica",
			want: Summary{},
		},
		{
			name: "counts states and due cards",
			cards: []card.Card{
				{ID: "a", Due: now.Add(-time.Hour), State: card.StateReview},
				{ID: "b", Due: now, State: card.StateLearning},
				{ID: "c", Due: now.Add(time.Hour), State: card.StateNew},
				{ID: "d", Due: now.AddDate(0, 0, 3), State: card.StateRelearning},
				{ID: "e", Due: now.AddDate(0, 0, 5), State: card.StateReview},
			},
			want: Summary{
				Total:      5,
				DueNow:     2,
				New:        1,
				Learning:   1,
				Review:     2,
				Relearning: 1,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Summarize(tc.cards, now))
		})
	}
}
