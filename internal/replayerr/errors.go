// Package replayerr defines the error kinds shared across the replay
// engine: the two user-visible session-store errors that list/run/drop
// must be able to tell apart (§7), and a wrapper for a recovered panic from
// the PTY Supervisor's output-draining goroutine.
package replayerr

import (
	"errors"
	"fmt"
)

// ErrNoEntries is returned when the Session Index is empty.
var ErrNoEntries = errors.New("No replay entries found")

// ErrIndexOutOfRange is returned when a requested (0-based) index is not
// less than the number of entries in the Session Index.
var ErrIndexOutOfRange = errors.New("Replay index out of range")

// ThreadPanicError wraps a value recovered from a panic on the
// output-draining goroutine so it can be surfaced as an ordinary error at
// join time instead of crashing the process.
type ThreadPanicError struct {
	Payload any
}

func (e *ThreadPanicError) Error() string {
	return fmt.Sprintf("output thread panicked: %v", e.Payload)
}

// NewThreadPanicError builds a ThreadPanicError from a recover() payload.
func NewThreadPanicError(payload any) error {
	return &ThreadPanicError{Payload: payload}
}
