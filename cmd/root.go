// Package cmd wires the record/run/list/drop/clear surface onto the core
// engine packages, following a cobra root/subcommand style
// (rootCmd := &cobra.Command{...}; rootCmd.AddCommand(...)).
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/baptleduc/replay/internal/config"
)

// NewRootCommand builds the replay root command with all five subcommands
// registered.
func NewRootCommand() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:           "replay",
		Short:         "Record and replay interactive shell sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRecordCommand(cfg),
		newRunCommand(cfg),
		newListCommand(),
		newDropCommand(),
		newClearCommand(),
	)
	return root
}
