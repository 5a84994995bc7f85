package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/baptleduc/replay/internal/config"
	"github.com/baptleduc/replay/internal/ptysup"
	"github.com/baptleduc/replay/internal/store"
)

func newRunCommand(cfg *config.Config) *cobra.Command {
	var show bool
	var delayMS int

	c := &cobra.Command{
		Use:   "run [replay@{N}]",
		Short: "Replay a stored session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDelay(delayMS, cmd.Flags().Changed("delay")); err != nil {
				return err
			}

			index := uint32(0)
			if len(args) == 1 {
				n, err := parseSessionIndex(args[0])
				if err != nil {
					return err
				}
				index = n
			}

			sess, err := store.LoadByIndex(index)
			if err != nil {
				return err
			}

			if show {
				for _, c := range sess.Commands {
					fmt.Print(c)
				}
				return nil
			}

			return ptysup.Replay(sess, os.Stdout, cfg.Shell, time.Duration(delayMS)*time.Millisecond)
		},
	}
	c.Flags().BoolVar(&show, "show", false, "print the session's commands without executing them")
	c.Flags().IntVar(&delayMS, "delay", 0, "per-byte pacing delay in milliseconds (minimum 10 when given)")
	return c
}
