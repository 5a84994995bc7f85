package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baptleduc/replay/internal/store"
)

func newDropCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "drop [replay@{N}]",
		Short: "Remove a stored session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index := uint32(0)
			if len(args) == 1 {
				n, err := parseSessionIndex(args[0])
				if err != nil {
					return err
				}
				index = n
			}

			id, err := store.RemoveByIndex(index)
			if err != nil {
				return err
			}
			fmt.Printf("Removed session %s\n", id)
			return nil
		},
	}
}
