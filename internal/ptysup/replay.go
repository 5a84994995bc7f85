package ptysup

import (
	"io"
	"time"

	"github.com/baptleduc/replay/internal/session"
)

// pacedReplaySource is the replay-mode input source: it yields the bytes of
// a session's commands, concatenated in order, one byte per Read call, with
// a caller-configurable sleep before each byte. Because every "\r" still
// triggers the ordinary prompt-synchronization rendezvous in RunInputLoop,
// replay waits for each command to finish regardless of the pacing delay.
type pacedReplaySource struct {
	bytes []byte
	pos   int
	delay time.Duration
}

// newPacedReplaySource flattens a session's commands into a single byte
// stream. delay of 0 means no pacing.
func newPacedReplaySource(sess *session.Session, delay time.Duration) *pacedReplaySource {
	var all []byte
	for _, cmd := range sess.Commands {
		all = append(all, cmd...)
	}
	return &pacedReplaySource{bytes: all, delay: delay}
}

func (p *pacedReplaySource) Read(b []byte) (int, error) {
	if p.pos >= len(p.bytes) {
		return 0, io.EOF
	}
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	b[0] = p.bytes[p.pos]
	p.pos++
	return 1, nil
}
