package session

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func desc(s string) *string { return &s }

// P2: two Session values constructed with the same user, description, and
// timestamp produce the same id; a different description changes it.
func TestGenerateIDStability(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	id1 := generateID("alice", desc("demo"), ts)
	id2 := generateID("alice", desc("demo"), ts)
	if id1 != id2 {
		t.Fatalf("expected stable id, got %q vs %q", id1, id2)
	}
	if len(id1) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(id1))
	}

	id3 := generateID("alice", desc("other"), ts)
	if id3 == id1 {
		t.Fatalf("expected different description to change id")
	}

	id4 := generateID("alice", nil, ts)
	if id4 == id1 {
		t.Fatalf("expected nil description to change id relative to some description")
	}
}

func TestNewAssignsIDOnce(t *testing.T) {
	s, err := New(desc("hello world"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	id := s.ID
	s.AddCommand([]byte("echo hi\r"))
	if s.ID != id {
		t.Fatalf("id changed after adding a command")
	}
}

func TestAddRemoveLastCommand(t *testing.T) {
	s, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.AddCommand([]byte("echo 1\r"))
	s.AddCommand([]byte("echo 2\r"))

	last, ok := s.LastCommand()
	if !ok || last != "echo 2\r" {
		t.Fatalf("LastCommand = %q, %v; want %q, true", last, ok, "echo 2\r")
	}

	removed, ok := s.RemoveLastCommand()
	if !ok || removed != "echo 2\r" {
		t.Fatalf("RemoveLastCommand = %q, %v; want %q, true", removed, ok, "echo 2\r")
	}
	if len(s.Commands) != 1 || s.Commands[0] != "echo 1\r" {
		t.Fatalf("unexpected remaining commands: %v", s.Commands)
	}

	s.RemoveLastCommand()
	if _, ok := s.RemoveLastCommand(); ok {
		t.Fatalf("expected RemoveLastCommand on empty session to report ok=false")
	}
}

// P3: round-trip through both the uncompressed and zstd-compressed
// representations preserves every field.
func TestRoundTripUncompressed(t *testing.T) {
	s, err := New(desc("round trip"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.AddCommand([]byte("ls -la\r"))
	s.AddCommand([]byte("exit\r"))

	var buf bytes.Buffer
	if err := s.WriteTo(&buf, false); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	got, err := ReadSession(&buf, false)
	if err != nil {
		t.Fatalf("ReadSession: %v", err)
	}
	assertSessionsEqual(t, s, got)
}

func TestRoundTripCompressed(t *testing.T) {
	s, err := New(desc("round trip zstd"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.AddCommand([]byte("ls -la\r"))
	s.AddCommand([]byte("exit\r"))

	var buf bytes.Buffer
	if err := s.WriteTo(&buf, true); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	got, err := ReadSession(&buf, true)
	if err != nil {
		t.Fatalf("ReadSession: %v", err)
	}
	assertSessionsEqual(t, s, got)
}

func assertSessionsEqual(t *testing.T, want, got *Session) {
	t.Helper()
	if want.ID != got.ID || want.User != got.User {
		t.Fatalf("id/user mismatch: want %+v, got %+v", want, got)
	}
	if !want.Timestamp.Equal(got.Timestamp) {
		t.Fatalf("timestamp mismatch: want %v, got %v", want.Timestamp, got.Timestamp)
	}
	if (want.Description == nil) != (got.Description == nil) {
		t.Fatalf("description nilness mismatch: want %v, got %v", want.Description, got.Description)
	}
	if want.Description != nil && *want.Description != *got.Description {
		t.Fatalf("description mismatch: want %q, got %q", *want.Description, *got.Description)
	}
	if len(want.Commands) != len(got.Commands) {
		t.Fatalf("commands length mismatch: want %v, got %v", want.Commands, got.Commands)
	}
	for i := range want.Commands {
		if want.Commands[i] != got.Commands[i] {
			t.Fatalf("commands[%d] mismatch: want %q, got %q", i, want.Commands[i], got.Commands[i])
		}
	}
}

func TestReadMetadataProjectsFirstTwoCommandsStripped(t *testing.T) {
	s, err := New(desc("listing demo"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.AddCommand([]byte("echo one\r"))
	s.AddCommand([]byte("echo two\r"))
	s.AddCommand([]byte("echo three\r"))

	var buf bytes.Buffer
	if err := s.WriteTo(&buf, false); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	meta, err := ReadMetadata(&buf, false)
	if err != nil {
		t.Fatalf("ReadMetadata: %v", err)
	}
	if meta.Description == nil || *meta.Description != "listing demo" {
		t.Fatalf("unexpected description: %v", meta.Description)
	}
	want := []string{"echo one", "echo two"}
	if len(meta.FirstCommands) != len(want) {
		t.Fatalf("FirstCommands = %v, want %v", meta.FirstCommands, want)
	}
	for i := range want {
		if meta.FirstCommands[i] != want[i] {
			t.Fatalf("FirstCommands[%d] = %q, want %q", i, meta.FirstCommands[i], want[i])
		}
	}
	if strings.Contains(meta.FirstCommands[0], "\r") {
		t.Fatalf("expected \\r stripped from FirstCommands")
	}
}

func TestReadMetadataFromCompressed(t *testing.T) {
	s, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.AddCommand([]byte("only one\r"))

	var buf bytes.Buffer
	if err := s.WriteTo(&buf, true); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	meta, err := ReadMetadata(&buf, true)
	if err != nil {
		t.Fatalf("ReadMetadata: %v", err)
	}
	if len(meta.FirstCommands) != 1 || meta.FirstCommands[0] != "only one" {
		t.Fatalf("unexpected FirstCommands: %v", meta.FirstCommands)
	}
}
