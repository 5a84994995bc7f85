package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/baptleduc/replay/cmd"
)

func main() {
	logrus.SetLevel(logrus.WarnLevel)
	if os.Getenv("REPLAY_DEBUG") != "" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	root := cmd.NewRootCommand()
	if err := root.Execute(); err != nil {
		logrus.WithError(err).Debug("replay failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
