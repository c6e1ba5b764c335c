package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/flashleaf/flashleaf/internal/review"
)

type outputFormat string

func (f *outputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Type() string {
	return "format"
}

const (
	outputFormatText outputFormat = "text"
	outputFormatJSON outputFormat = "json"
)

var (
	_                pflag.Value = (*outputFormat)(nil)
	allOutputFormats             = []outputFormat{outputFormatText, outputFormatJSON}
)

func newStatusCommand() *cobra.Command {
	format := outputFormatText
	command := &cobra.Command{
		Use:   "status",
		Short: "Show the state of the local replica",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			ctx := cmd.Context()
			cards, err := app.store.AllCards(ctx)
			if err != nil {
				return fmt.Errorf("store.AllCards() > %w", err)
			}
			subscriptions, err := app.store.Subscriptions(ctx)
			if err != nil {
				return fmt.Errorf("store.Subscriptions() > %w", err)
			}

			summary := review.Summarize(cards, time.Now())
			_, hasSession := app.session.UserID()

			if format == outputFormatJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(struct {
					Summary       review.Summary `json:"summary"`
					Subscriptions []string       `json:"subscriptions"`
					RemoteSession bool           `json:"remote_session"`
				}{
					Summary:       summary,
					Subscriptions: subscriptions,
					RemoteSession: hasSession,
				})
			}

			fmt.Println("Local replica:")
			fmt.Printf("  Cards:         %d\n", summary.Total)
			fmt.Printf("  Due now:       %d\n", summary.DueNow)
			fmt.Printf("  New:           %d\n", summary.New)
			fmt.Printf("  Learning:      %d\n", summary.Learning)
			fmt.Printf("  Review:        %d\n", summary.Review)
			fmt.Printf("  Relearning:    %d\n", summary.Relearning)
			fmt.Printf("  Subscriptions: %d\n", len(subscriptions))

			if hasSession {
				fmt.Println("Remote session: configured")
			} else {
				fmt.Println("Remote session: not configured, running fully local")
			}
			return nil
		},
	}
	command.Flags().Var(&format, "format", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))

	return command
}
