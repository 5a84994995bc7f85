// Package session implements content-addressed recording: a Session owns
// its ordered commands and knows how to compute its own stable id and
// (de)serialize itself, optionally through zstd. Filesystem layout and
// indexing are the session store's job (internal/store), not this
// package's.
package session

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os/user"
	"time"

	"github.com/klauspost/compress/zstd"
)

// DefaultCompressionLevel is the zstd level used when a session is saved
// compressed.
const DefaultCompressionLevel = zstd.SpeedDefault // level 3 equivalent

// Session is a recorded, ordered sequence of submitted command lines
// together with provenance metadata.
type Session struct {
	Description *string   `json:"description"`
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	User        string    `json:"user"`
	Commands    []string  `json:"commands"`
}

// Metadata is the partial projection used by listing: description,
// timestamp, and the first two commands with their trailing \r stripped.
// ReadMetadata builds it from a stored session file; the whole commands
// array is decoded along the way and all but the first two are discarded.
type Metadata struct {
	Description   *string   `json:"description"`
	Timestamp     time.Time `json:"timestamp"`
	FirstCommands []string  `json:"-"`
}

// metadataWire mirrors the on-disk shape minus id and user. Its Commands
// field receives the full "commands" array, which ReadMetadata then cuts to
// the first two entries for FirstCommands.
type metadataWire struct {
	Description *string   `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Commands    []string  `json:"commands"`
}

// New constructs a Session with a freshly assigned id, timestamp (UTC, now)
// and the OS login user. description, if present, participates in the id.
func New(description *string) (*Session, error) {
	u, err := currentUsername()
	if err != nil {
		return nil, err
	}
	ts := time.Now().UTC()
	return &Session{
		Description: description,
		ID:          generateID(u, description, ts),
		Timestamp:   ts,
		User:        u,
		Commands:    nil,
	}, nil
}

func currentUsername() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// generateID computes hex(SHA-256(user || description_if_present ||
// timestamp_rfc3339)) — 64 lowercase hex characters, chosen to match the
// session index record width.
func generateID(user string, description *string, timestamp time.Time) string {
	h := sha256.New()
	h.Write([]byte(user))
	if description != nil {
		h.Write([]byte(*description))
	}
	h.Write([]byte(timestamp.Format(time.RFC3339Nano)))
	return hex.EncodeToString(h.Sum(nil))
}

// AddCommand appends a command line, decoding raw bytes as UTF-8 with lossy
// replacement of invalid sequences. Interactive sessions are expected to be
// text; non-UTF-8 input does not round-trip byte-identically.
func (s *Session) AddCommand(raw []byte) {
	s.Commands = append(s.Commands, toUTF8Lossy(raw))
}

// RemoveLastCommand pops and returns the most recently added command, used
// by Ctrl+C handling. ok is false if there is nothing to remove.
func (s *Session) RemoveLastCommand() (cmd string, ok bool) {
	n := len(s.Commands)
	if n == 0 {
		return "", false
	}
	cmd = s.Commands[n-1]
	s.Commands = s.Commands[:n-1]
	return cmd, true
}

// LastCommand returns the most recently added command without removing it.
func (s *Session) LastCommand() (cmd string, ok bool) {
	n := len(s.Commands)
	if n == 0 {
		return "", false
	}
	return s.Commands[n-1], true
}

func toUTF8Lossy(raw []byte) string {
	// Converting through a rune slice replaces every byte that is not part of
	// a valid UTF-8 sequence with U+FFFD, so the stored string is always
	// valid UTF-8.
	return string([]rune(string(raw)))
}

// WriteTo serializes s as pretty JSON, optionally zstd-compressed at
// DefaultCompressionLevel. Exactly one representation is written per call.
func (s *Session) WriteTo(w io.Writer, compress bool) error {
	if !compress {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(DefaultCompressionLevel))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadSession deserializes a full Session from r, transparently decoding
// zstd if compressed is true.
func ReadSession(r io.Reader, compressed bool) (*Session, error) {
	if compressed {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	var s Session
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadMetadata deserializes the Metadata projection from r — the
// description, timestamp, and first two commands (\r stripped). The full
// commands array is decoded and then cut to its first two entries; id and
// user are not decoded.
func ReadMetadata(r io.Reader, compressed bool) (*Metadata, error) {
	if compressed {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	var wire metadataWire
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, err
	}

	first := wire.Commands
	if len(first) > 2 {
		first = first[:2]
	}
	stripped := make([]string, len(first))
	for i, c := range first {
		stripped[i] = stripCR(c)
	}

	return &Metadata{
		Description:   wire.Description,
		Timestamp:     wire.Timestamp,
		FirstCommands: stripped,
	}, nil
}

func stripCR(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\r' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
