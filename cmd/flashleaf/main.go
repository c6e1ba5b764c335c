package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

func main() {
	rootCommand := &cobra.Command{
		Use:          "flashleaf",
		Short:        "Spaced repetition vocabulary trainer with remote synchronization",
		SilenceUsage: true,
	}
	rootCommand.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to the configuration file")

	rootCommand.AddCommand(newReviewCommand())
	rootCommand.AddCommand(newSyncCommand())
	rootCommand.AddCommand(newPresetCommand())
	rootCommand.AddCommand(newCardCommand())
	rootCommand.AddCommand(newStatusCommand())
	rootCommand.AddCommand(newValidateCommand())

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
