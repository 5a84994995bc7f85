package store

import (
	"testing"

	"github.com/baptleduc/replay/internal/paths"
	"github.com/baptleduc/replay/internal/session"
)

func withTempRoot(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	restore := paths.SetRootForTest(dir)
	t.Cleanup(restore)
}

func desc(s string) *string { return &s }

func newSaved(t *testing.T, description *string, compress bool, commands ...string) *session.Session {
	t.Helper()
	s, err := session.New(description)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	for _, c := range commands {
		s.AddCommand([]byte(c))
	}
	if err := Save(s, compress); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return s
}

func TestSaveAndLoadLastUncompressed(t *testing.T) {
	withTempRoot(t)
	s := newSaved(t, desc("first"), false, "echo hi\r")

	got, err := LoadLast()
	if err != nil {
		t.Fatalf("LoadLast: %v", err)
	}
	if got.ID != s.ID || len(got.Commands) != 1 || got.Commands[0] != "echo hi\r" {
		t.Fatalf("unexpected loaded session: %+v", got)
	}
}

func TestSaveAndLoadCompressed(t *testing.T) {
	withTempRoot(t)
	s := newSaved(t, desc("zstd"), true, "echo hi\r", "exit\r")

	got, err := LoadByID(s.ID)
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if len(got.Commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(got.Commands))
	}
}

func TestOrdinalsNewestFirst(t *testing.T) {
	withTempRoot(t)
	first := newSaved(t, desc("one"), false)
	second := newSaved(t, desc("two"), false)

	got0, err := LoadByIndex(0)
	if err != nil || got0.ID != second.ID {
		t.Fatalf("LoadByIndex(0) = %+v, %v; want id %q", got0, err, second.ID)
	}
	got1, err := LoadByIndex(1)
	if err != nil || got1.ID != first.ID {
		t.Fatalf("LoadByIndex(1) = %+v, %v; want id %q", got1, err, first.ID)
	}
}

func TestAllMetadataNewestFirst(t *testing.T) {
	withTempRoot(t)
	newSaved(t, desc("one"), false, "echo one\r")
	newSaved(t, desc("two"), false, "echo two\r")

	metas, err := AllMetadata()
	if err != nil {
		t.Fatalf("AllMetadata: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(metas))
	}
	if *metas[0].Description != "two" || *metas[1].Description != "one" {
		t.Fatalf("unexpected ordering: %q, %q", *metas[0].Description, *metas[1].Description)
	}
}

func TestRemoveByIndexDeletesFileAndIndexEntry(t *testing.T) {
	withTempRoot(t)
	first := newSaved(t, desc("one"), false)
	newSaved(t, desc("two"), false)

	removedID, err := RemoveByIndex(1) // oldest
	if err != nil {
		t.Fatalf("RemoveByIndex: %v", err)
	}
	if removedID != first.ID {
		t.Fatalf("removed %q, want %q", removedID, first.ID)
	}

	if _, err := LoadByID(first.ID); err == nil {
		t.Fatalf("expected removed session file to be gone")
	}

	metas, err := AllMetadata()
	if err != nil {
		t.Fatalf("AllMetadata: %v", err)
	}
	if len(metas) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(metas))
	}
}

func TestClearRemovesEverything(t *testing.T) {
	withTempRoot(t)
	newSaved(t, desc("one"), false)

	if err := Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if _, err := LoadLast(); err == nil {
		t.Fatalf("expected LoadLast to fail after Clear")
	}
}
