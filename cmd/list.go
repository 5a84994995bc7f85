package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/baptleduc/replay/internal/display"
	"github.com/baptleduc/replay/internal/store"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every recorded session, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			metas, err := store.AllMetadata()
			if err != nil {
				return err
			}
			now := time.Now()
			for i, meta := range metas {
				fmt.Println(display.Line(i, meta, now))
			}
			return nil
		},
	}
}
