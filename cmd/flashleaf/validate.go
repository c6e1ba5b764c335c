package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flashleaf/flashleaf/internal/config"
)

func newValidateCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			fmt.Println("✓ Configuration is valid")
			return nil
		},
	}

	return command
}
