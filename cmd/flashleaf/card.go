package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCardCommand() *cobra.Command {
	cardCommand := &cobra.Command{
		Use:   "card",
		Short: "Manage individual cards",
	}

	cardCommand.AddCommand(newCardDeleteCommand())

	return cardCommand
}

func newCardDeleteCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "delete",
		Short: "Delete a card locally and propagate the removal to the remote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			ctx := cmd.Context()
			cardID := args[0]

			existing, err := app.store.Card(ctx, cardID)
			if err != nil {
				return fmt.Errorf("store.Card(%s) > %w", cardID, err)
			}
			if existing == nil {
				return fmt.Errorf("card %s not found", cardID)
			}

			if err := app.store.DeleteCard(ctx, cardID); err != nil {
				return fmt.Errorf("store.DeleteCard(%s) > %w", cardID, err)
			}
			fmt.Printf("Deleted card %s\n", cardID)
			return nil
		},
	}

	return command
}
