package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/flashleaf/flashleaf/internal/inference"
	"github.com/flashleaf/flashleaf/internal/review"
)

const maxPromptAttempts = 3

// ReviewQuizCLI manages the interactive multiple-choice review session
type ReviewQuizCLI struct {
	*InteractiveReviewCLI
	reviewSession *review.Session

	answered int
	correct  int
}

// NewReviewQuizCLI creates a new review quiz interactive CLI. The review
// session must be initialized before Run is called.
func NewReviewQuizCLI(reviewSession *review.Session) *ReviewQuizCLI {
	return &ReviewQuizCLI{
		InteractiveReviewCLI: newInteractiveReviewCLI(),
		reviewSession:        reviewSession,
	}
}

func (r *ReviewQuizCLI) Session(ctx context.Context) error {
	selection, err := r.reviewSession.Next(ctx)
	if err != nil {
		return fmt.Errorf("reviewSession.Next() > %w", err)
	}
	if selection == nil {
		fmt.Fprintln(r.stdoutWriter, "No more cards to review!")
		if r.answered > 0 {
			fmt.Fprintf(r.stdoutWriter, "Answered %d cards, %d correct.\n", r.answered, r.correct)
		}
		return errEnd
	}

	prompt, err := r.prompt(ctx, selection)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.stdoutWriter, prompt.Question.Prompt)
	for i, choice := range prompt.Question.Choices {
		fmt.Fprintf(r.stdoutWriter, "  %d. %s\n", i+1, choice)
	}
	_, _ = r.bold.Fprintf(r.stdoutWriter, "Answer (1-%d): ", len(prompt.Question.Choices))

	userAnswer, err := r.stdinReader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	picked, err := strconv.Atoi(strings.TrimSpace(userAnswer))
	isCorrect := err == nil && picked-1 == prompt.Question.CorrectIndex
	correctWord := prompt.Question.Choices[prompt.Question.CorrectIndex]

	if isCorrect {
		fmt.Fprint(r.stdoutWriter, "✅ ")
		color.Green(`It's correct. The answer for %s is "%s"`,
			r.bold.Sprintf("%s", prompt.Word),
			r.italic.Sprintf("%s", correctWord),
		)
	} else {
		fmt.Fprint(r.stdoutWriter, "❌ ")
		color.Red(`It's wrong. The answer for %s is "%s"`,
			r.bold.Sprintf("%s", prompt.Word),
			r.italic.Sprintf("%s", correctWord),
		)
	}
	fmt.Fprintln(r.stdoutWriter)

	rating := review.RatingForAnswer(isCorrect)
	updated, err := r.reviewSession.Record(ctx, selection, rating)
	if err != nil {
		return fmt.Errorf("reviewSession.Record(%s) > %w", selection.Card.ID, err)
	}

	r.answered++
	if isCorrect {
		r.correct++
	}

	fmt.Fprintf(r.stdoutWriter, "Next review: %s\n\n", updated.Due.Local().Format("2006-01-02 15:04"))
	return nil
}

// prompt generates a question for the selection, regenerating on a
// malformed generator response so the selection is never dropped.
func (r *ReviewQuizCLI) prompt(ctx context.Context, selection *review.Selection) (*review.Prompt, error) {
	var lastErr error
	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		prompt, err := r.reviewSession.Prompt(ctx, selection)
		if err == nil {
			return prompt, nil
		}
		if !errors.Is(err, inference.ErrMalformedResponse) {
			return nil, fmt.Errorf("reviewSession.Prompt(%s) > %w", selection.Card.ID, err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("reviewSession.Prompt(%s) > %w", selection.Card.ID, lastErr)
}
