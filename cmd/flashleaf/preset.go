package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPresetCommand() *cobra.Command {
	presetCommand := &cobra.Command{
		Use:   "preset",
		Short: "Manage word preset subscriptions",
	}

	presetCommand.AddCommand(newPresetListCommand())
	presetCommand.AddCommand(newPresetSubscribeCommand())
	presetCommand.AddCommand(newPresetUnsubscribeCommand())

	return presetCommand
}

func newPresetListCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "list",
		Short: "List public presets and the current subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			ctx := cmd.Context()
			subscriptions, err := app.store.Subscriptions(ctx)
			if err != nil {
				return fmt.Errorf("store.Subscriptions() > %w", err)
			}
			subscribed := make(map[string]bool, len(subscriptions))
			for _, id := range subscriptions {
				subscribed[id] = true
			}

			presets, err := app.remoteClient.FetchPublicPresets(ctx)
			if err != nil {
				app.logger.Warn("fetching public presets failed, listing cached presets", "error", err)
				presets, err = app.store.AllPresets(ctx)
				if err != nil {
					return fmt.Errorf("store.AllPresets() > %w", err)
				}
			}
			if len(presets) == 0 {
				fmt.Println("No presets available.")
				return nil
			}

			for _, preset := range presets {
				marker := " "
				if subscribed[preset.ID] {
					marker = "*"
				}
				fmt.Printf("%s %s  %s (%d words)\n", marker, preset.ID, preset.Name, len(preset.Words))
				if preset.Description != "" {
					fmt.Printf("    %s\n", preset.Description)
				}
			}
			fmt.Printf("\n%d preset(s), * = subscribed\n", len(presets))
			return nil
		},
	}

	return command
}

func newPresetSubscribeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe to a preset so its words enter the review rotation",
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
			presetID := args[0]

			preset, err := app.store.Preset(ctx, presetID)
			if err != nil {
				return fmt.Errorf("store.Preset(%s) > %w", presetID, err)
			}
			if preset == nil {
				preset, err = app.remoteClient.FetchPreset(ctx, presetID)
				if err != nil {
					return fmt.Errorf("remote.FetchPreset(%s) > %w", presetID, err)
				}
				if preset == nil {
					return fmt.Errorf("preset %s not found", presetID)
				}
				if err := app.store.SavePreset(ctx, *preset); err != nil {
					return fmt.Errorf("store.SavePreset(%s) > %w", presetID, err)
				}
			}

			if err := app.store.AddSubscription(ctx, presetID); err != nil {
				return fmt.Errorf("store.AddSubscription(%s) > %w", presetID, err)
			}
			fmt.Printf("Subscribed to %s (%d words)\n", preset.Name, len(preset.Words))
			return nil
		},
	}

	return command
}

func newPresetUnsubscribeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "unsubscribe",
		Short: "Unsubscribe from a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			presetID := args[0]
			if err := app.store.RemoveSubscription(cmd.Context(), presetID); err != nil {
				return fmt.Errorf("store.RemoveSubscription(%s) > %w", presetID, err)
			}
			fmt.Printf("Unsubscribed from %s\n", presetID)
			return nil
		},
	}

	return command
}
