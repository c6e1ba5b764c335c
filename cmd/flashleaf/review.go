package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flashleaf/flashleaf/internal/card"
	"github.com/flashleaf/flashleaf/internal/cli"
	"github.com/flashleaf/flashleaf/internal/inference"
	"github.com/flashleaf/flashleaf/internal/inference/gemini"
	"github.com/flashleaf/flashleaf/internal/review"
	"github.com/flashleaf/flashleaf/internal/scheduler"
	"github.com/flashleaf/flashleaf/internal/vocab"
)

func newReviewCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "review",
		Short: "Start an interactive review session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			if app.config.Gemini.APIKey == "" {
				return fmt.Errorf("GEMINI_API_KEY environment variable is required")
			}
			fmt.Printf("Using Gemini provider (model: %s)\n", app.config.Gemini.Model)
			geminiClient := gemini.NewClient(app.config.Gemini.APIKey, app.config.Gemini.Model, inference.DefaultMaxRetryAttempts)

			vocabRepo, err := vocab.Open(app.config.Storage.VocabularyPath)
			if err != nil {
				return fmt.Errorf("vocab.Open(%s) > %w", app.config.Storage.VocabularyPath, err)
			}
			defer func() {
				_ = vocabRepo.Close()
			}()

			session := review.NewSession(
				app.store,
				app.remoteClient,
				app.synchronizer,
				func(params card.Parameters) scheduler.Scheduler {
					return scheduler.NewSM2(params)
				},
				vocabRepo,
				geminiClient,
				app.logger,
			)

			ctx := cmd.Context()
			result, err := session.Initialize(ctx)
			if err != nil {
				return fmt.Errorf("session.Initialize() > %w", err)
			}
			if result != nil && result.SessionAvailable {
				fmt.Printf("Synchronized: pulled %d cards, pushed %d cards\n", result.CardsPulled, result.CardsPushed)
			}

			quizCLI := cli.NewReviewQuizCLI(session)
			fmt.Println("Interactive review session started!")
			fmt.Println()
			return quizCLI.Run(ctx, quizCLI)
		},
	}

	return command
}
