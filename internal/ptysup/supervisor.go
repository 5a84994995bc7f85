// Package ptysup supervises a shell child inside a pseudo-terminal: it
// spawns the child, runs the output-draining goroutine, forwards user input
// through the input interpreter (input.go), and drives the record/replay
// session lifecycle.
package ptysup

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/baptleduc/replay/internal/replayerr"
	"github.com/baptleduc/replay/internal/session"
	"github.com/baptleduc/replay/internal/store"
)

// RecordConfig parameterizes a supervised session.
type RecordConfig struct {
	RecordInput        bool
	SessionDescription *string
	NoCompression      bool
}

const (
	ptyRows = 24
	ptyCols = 80
)

// Record runs a fresh recording against shellPath, reading raw keystrokes
// from userInput and echoing shell output to userOutput. It returns the
// human-readable outcome message ("Session saved" / "No session saved").
func Record(userInput io.Reader, userOutput io.Writer, shellPath string, description *string, noCompression bool) (string, error) {
	sess, err := session.New(description)
	if err != nil {
		return "", fmt.Errorf("construct session: %w", err)
	}

	cfg := RecordConfig{
		RecordInput:        true,
		SessionDescription: description,
		NoCompression:      noCompression,
	}

	reason, err := runSupervised(userInput, userOutput, shellPath, cfg, sess)
	if err != nil {
		return "", err
	}

	if reason == ReasonQuit {
		return "No session saved", nil
	}

	if err := store.Save(sess, !noCompression); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return "Session saved", nil
}

// Replay drives shellPath with sess's recorded commands as input, pacing
// each byte by delay (0 means no pacing). It never saves or returns a
// message — replay is read-only over the session store.
func Replay(sess *session.Session, userOutput io.Writer, shellPath string, delay time.Duration) error {
	cfg := RecordConfig{RecordInput: false}
	source := newPacedReplaySource(sess, delay)
	_, err := runSupervised(source, userOutput, shellPath, cfg, nil)
	return err
}

// runSupervised performs the full pty setup sequence and drives the input
// loop to completion.
func runSupervised(
	userInput io.Reader,
	userOutput io.Writer,
	shellPath string,
	cfg RecordConfig,
	sess *session.Session,
) (TerminationReason, error) {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return ReasonEOF, fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() { _ = term.Restore(int(os.Stdin.Fd()), oldState) }()

	cmd := exec.Command(shellPath)
	master, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: ptyRows, Cols: ptyCols})
	if err != nil {
		return ReasonEOF, fmt.Errorf("start pty: %w", err)
	}
	defer master.Close()

	logrus.WithField("shell", shellPath).Debug("pty allocated, child spawned")
	child := newExecChildController(cmd)

	reader := bufio.NewReader(master)
	sentinel, err := discoverPromptSentinel(master, reader)
	if err != nil {
		_ = child.Kill()
		return ReasonEOF, fmt.Errorf("discover prompt sentinel: %w", err)
	}
	logrus.WithField("sentinel", string(sentinel)).Debug("prompt sentinel discovered")

	ps1Ready := make(chan struct{}, 1)
	cmdSent := make(chan struct{}, 1)

	outErrCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("panic", r).Warn("output thread panicked")
				outErrCh <- replayerr.NewThreadPanicError(r)
			}
		}()
		outErrCh <- runOutputThread(reader, userOutput, ps1Ready, cmdSent, sentinel)
	}()

	reason, loopErr := RunInputLoop(userInput, master, child, ps1Ready, cmdSent, cfg, sess)

	// Disable raw mode promptly rather than waiting for the deferred
	// restore, then join the output thread.
	_ = term.Restore(int(os.Stdin.Fd()), oldState)

	outErr := <-outErrCh
	if outErr != nil {
		if panicErr, ok := outErr.(*replayerr.ThreadPanicError); ok {
			return reason, panicErr
		}
		logrus.WithError(outErr).Debug("output thread ended with error")
	}

	if loopErr != nil {
		return reason, loopErr
	}
	return reason, nil
}
