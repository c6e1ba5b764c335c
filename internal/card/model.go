// Package card provides the scheduling domain model: cards, review logs,
// scheduler parameters and vocabulary presets.
package card

import "time"

// State is the lifecycle stage of a card.
type State int

const (
	StateNew State = iota
	StateLearning
	StateReview
	StateRelearning
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateLearning:
		return "learning"
	case StateReview:
		return "review"
	case StateRelearning:
		return "relearning"
	}
	return "unknown"
}

// Rating is the grade a user assigns to a review.
type Rating int

const (
	RatingAgain Rating = iota + 1
	RatingHard
	RatingGood
	RatingEasy
)

// String returns the lowercase name of the rating.
func (r Rating) String() string {
	switch r {
	case RatingAgain:
		return "again"
	case RatingHard:
		return "hard"
	case RatingGood:
		return "good"
	case RatingEasy:
		return "easy"
	}
	return "unknown"
}

// Card is the review state of a single vocabulary item. Exactly one card
// exists per item id per user, locally and on the remote authority.
type Card struct {
	ID            string     `json:"id"`
	Due           time.Time  `json:"due"`
	Stability     float64    `json:"stability"`
	Difficulty    float64    `json:"difficulty"`
	ElapsedDays   int        `json:"elapsed_days"`
	ScheduledDays int        `json:"scheduled_days"`
	Reps          int        `json:"reps"`
	Lapses        int        `json:"lapses"`
	State         State      `json:"state"`
	LastReview    *time.Time `json:"last_review,omitempty"`
}

// ReviewLog is an immutable record of one grading event. It snapshots the
// card as it was before the review was applied. IsNew is true only for the
// card's first-ever review, captured at selection time.
type ReviewLog struct {
	CardID          string    `json:"card_id"`
	Rating          Rating    `json:"rating"`
	State           State     `json:"state"`
	Due             time.Time `json:"due"`
	Stability       float64   `json:"stability"`
	Difficulty      float64   `json:"difficulty"`
	ElapsedDays     int       `json:"elapsed_days"`
	LastElapsedDays int       `json:"last_elapsed_days"`
	ScheduledDays   int       `json:"scheduled_days"`
	Review          time.Time `json:"review"`
	IsNew           bool      `json:"is_new"`
}

// Parameters is the per-user configuration consumed by the scheduler.
// A single logical instance exists per user.
type Parameters struct {
	RequestRetention float64   `json:"request_retention"`
	MaximumInterval  int       `json:"maximum_interval"`
	W                []float64 `json:"w"`
	EnableFuzz       bool      `json:"enable_fuzz"`
}

// DefaultParameters returns the parameters used before a user has saved
// any of their own.
func DefaultParameters() Parameters {
	return Parameters{
		RequestRetention: 0.9,
		MaximumInterval:  36525,
		W: []float64{
			0.4, 0.6, 2.4, 5.8, 4.93, 0.94, 0.86, 0.01, 1.49, 0.14, 0.94,
			2.18, 0.05, 0.34, 1.26, 0.29, 2.61,
		},
		EnableFuzz: true,
	}
}

// Preset is a named, shared or private set of vocabulary ids a user can
// draw new cards from. Presets are owned remotely and cached locally
// read-only; only the subscription set is local and mutable.
type Preset struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	OwnerID     string     `json:"owner_id,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	IsPublic    bool       `json:"is_public"`
	Words       []string   `json:"words"`
}
