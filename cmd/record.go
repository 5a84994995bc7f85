package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/baptleduc/replay/internal/config"
	"github.com/baptleduc/replay/internal/ptysup"
)

func newRecordCommand(cfg *config.Config) *cobra.Command {
	var noCompression bool

	c := &cobra.Command{
		Use:   "record [description]",
		Short: "Start a recording",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var description *string
			if len(args) == 1 {
				if err := validateDescription(args[0]); err != nil {
					return err
				}
				description = &args[0]
			}

			message, err := ptysup.Record(os.Stdin, os.Stdout, cfg.Shell, description, noCompression)
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}
	c.Flags().BoolVar(&noCompression, "no-compression", cfg.NoCompression, "store the session uncompressed")
	return c
}
