// Package inference defines the boundary to the question-generation model.
package inference

import (
	"context"
	"errors"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference Client

// ErrMalformedResponse marks generator output that failed validation even
// after a repair attempt. The caller recovers by regenerating for the same
// word, not by switching items.
var ErrMalformedResponse = errors.New("malformed generator response")

// ChoiceCount is the number of options a generated question must offer.
const ChoiceCount = 4

// Question is a fill-in-the-blank multiple-choice prompt for one word.
type Question struct {
	Prompt       string
	Choices      []string
	CorrectIndex int
}

// Client generates review questions.
type Client interface {
	GenerateQuestion(ctx context.Context, word string) (Question, error)
}

// DefaultMaxRetryAttempts bounds retries for transient generator failures.
const DefaultMaxRetryAttempts = 3
