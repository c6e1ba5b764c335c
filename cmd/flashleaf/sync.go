package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSyncCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the local replica with the remote service",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			result, err := app.synchronizer.Synchronize(cmd.Context())
			if err != nil {
				return fmt.Errorf("synchronizer.Synchronize() > %w", err)
			}
			if !result.SessionAvailable {
				fmt.Println("No session credentials configured, nothing to synchronize.")
				return nil
			}

			fmt.Println("Synchronization complete:")
			fmt.Printf("  Cards pulled: %d\n", result.CardsPulled)
			fmt.Printf("  Cards pushed: %d\n", result.CardsPushed)
			if result.ParametersPulled {
				fmt.Println("  Scheduler parameters pulled from remote")
			}
			if result.ParametersPushed {
				fmt.Println("  Scheduler parameters pushed to remote")
			}
			return nil
		},
	}

	return command
}
