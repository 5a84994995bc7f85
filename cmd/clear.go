package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baptleduc/replay/internal/store"
)

func newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the entire replay store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Println("Replay store cleared")
			return nil
		},
	}
}
