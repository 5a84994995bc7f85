// Input interpreter: the byte-dispatch table driving the line editor and
// termination detection, factored out so it is reproducible against a mock
// shell without a real PTY. RunInputLoop is the testable heart of the system.
package ptysup

import (
	"io"
	"regexp"

	"github.com/baptleduc/replay/internal/charbuf"
	"github.com/baptleduc/replay/internal/session"
)

const (
	byteBackspace = 0x7F
	byteCtrlW     = 0x17
	byteCtrlC     = 0x03
	byteEnter     = '\r'
)

var exitLineRegex = regexp.MustCompile(`^\s*exit\s*\r$`)

// TerminationReason explains why RunInputLoop returned, so the caller
// (Supervisor) knows whether to save the session and which message to emit.
type TerminationReason int

const (
	// ReasonEOF means user_input was exhausted (0 read, no q/exit line).
	ReasonEOF TerminationReason = iota
	// ReasonQuit means the submitted line was exactly "q\r": discard and kill.
	ReasonQuit
	// ReasonExit means the submitted line matched the exit regex: save and EOF the shell.
	ReasonExit
	// ReasonChildExited means the child process had already exited.
	ReasonChildExited
)

// MasterWriter is the PTY writer side: forwarding raw bytes to the child,
// and closeable so the exit path can send the child EOF by dropping it.
type MasterWriter interface {
	io.Writer
	io.Closer
}

// RunInputLoop reads one byte at a time from userInput and drives the char
// buffer / session through the dispatch table below. sess may be nil when
// cfg.RecordInput is false (replay).
//
// Before the first iteration and after every submitted "\r" that doesn't
// terminate the loop, it blocks once on ps1Ready so no byte is ever sent
// while the shell is still processing the previous command.
func RunInputLoop(
	userInput io.Reader,
	master MasterWriter,
	child ChildController,
	ps1Ready <-chan struct{},
	cmdSent chan<- struct{},
	cfg RecordConfig,
	sess *session.Session,
) (TerminationReason, error) {
	buf := charbuf.New()

	// Initial prompt arrival: avoid racing ahead of the shell's first PS1.
	<-ps1Ready

	one := make([]byte, 1)
	for {
		if exited, _ := child.TryWait(); exited {
			return ReasonChildExited, nil
		}

		n, err := userInput.Read(one)
		if n == 0 || err == io.EOF {
			return ReasonEOF, nil
		}
		if err != nil {
			return ReasonEOF, err
		}
		b := one[0]

		switch b {
		case byteBackspace:
			buf.PopChar()
		case byteCtrlW:
			buf.PopWord()
		case byteCtrlC:
			if cfg.RecordInput && sess != nil {
				sess.RemoveLastCommand()
			}
			buf.Clear()
		case byteEnter:
			buf.PushChar(byteEnter)
			line := string(buf.Snapshot())
			if cfg.RecordInput && sess != nil {
				sess.AddCommand(buf.Snapshot())
			}

			switch {
			case line == "q\r":
				writeByte(master, b)
				child.Kill()
				return ReasonQuit, nil
			case exitLineRegex.MatchString(line):
				writeByte(master, b)
				master.Close()
				return ReasonExit, nil
			default:
				buf.Clear()
				writeByte(master, b)
				cmdSent <- struct{}{}
				<-ps1Ready
				continue
			}
		default:
			buf.PushChar(b)
		}

		writeByte(master, b)
	}
}

func writeByte(w io.Writer, b byte) {
	_, _ = w.Write([]byte{b})
}
