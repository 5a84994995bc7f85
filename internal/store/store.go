// Package store resolves which on-disk variant of a session to read or
// write, keeps the session index in sync with the sessions/ directory, and
// exposes the by-ordinal operations record/run/list/drop/clear are built
// from.
package store

import (
	"fmt"
	"os"

	"github.com/baptleduc/replay/internal/paths"
	"github.com/baptleduc/replay/internal/session"
	"github.com/baptleduc/replay/internal/sessionindex"
)

// Save writes s to its sessions/ file (compressed as ".zst" or plain as
// ".json") and appends its id to the Session Index. Save always writes
// exactly one file variant — a prior save under the other extension for the
// same id is not cleaned up, since ids are freshly generated per session and
// never reused.
func Save(s *session.Session, compress bool) error {
	ext := "json"
	if compress {
		ext = "zst"
	}
	path, err := paths.SessionPath(s.ID, ext)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.WriteTo(f, compress); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return sessionindex.Push(s.ID)
}

// resolvePath finds the stored file for id, preferring ".zst" over ".json"
// when both somehow exist, and reports whether the match is compressed.
func resolvePath(id string) (path string, compressed bool, err error) {
	zstPath, err := paths.SessionPath(id, "zst")
	if err != nil {
		return "", false, err
	}
	if _, statErr := os.Stat(zstPath); statErr == nil {
		return zstPath, true, nil
	}

	jsonPath, err := paths.SessionPath(id, "json")
	if err != nil {
		return "", false, err
	}
	if _, statErr := os.Stat(jsonPath); statErr == nil {
		return jsonPath, false, nil
	}

	return "", false, fmt.Errorf("no stored session file for id %s", id)
}

// LoadByID loads the full Session stored under id.
func LoadByID(id string) (*session.Session, error) {
	path, compressed, err := resolvePath(id)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return session.ReadSession(f, compressed)
}

// LoadByIndex loads the full Session at ordinal n (0 = most recent).
func LoadByIndex(n uint32) (*session.Session, error) {
	id, err := sessionindex.GetID(n)
	if err != nil {
		return nil, err
	}
	return LoadByID(id)
}

// LoadLast is a convenience for LoadByIndex(0).
func LoadLast() (*session.Session, error) {
	return LoadByIndex(0)
}

// LoadMetadataByIndex loads only the Metadata projection at ordinal n (see
// session.ReadMetadata for what is decoded). Listing uses AllMetadata.
func LoadMetadataByIndex(n uint32) (*session.Metadata, error) {
	id, err := sessionindex.GetID(n)
	if err != nil {
		return nil, err
	}
	path, compressed, err := resolvePath(id)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return session.ReadMetadata(f, compressed)
}

// AllMetadata returns the Metadata projection for every stored session,
// newest first, matching the Session Index's ordering.
func AllMetadata() ([]*session.Metadata, error) {
	ids, err := sessionindex.IterRev()
	if err != nil {
		return nil, err
	}
	out := make([]*session.Metadata, 0, len(ids))
	for _, id := range ids {
		path, compressed, err := resolvePath(id)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		meta, err := session.ReadMetadata(f, compressed)
		f.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, meta)
	}
	return out, nil
}

// RemoveByIndex removes the ordinal n entry from both the Session Index and
// its sessions/ file, returning the removed id.
func RemoveByIndex(n uint32) (string, error) {
	id, err := sessionindex.Remove(n)
	if err != nil {
		return "", err
	}
	if path, _, err := resolvePath(id); err == nil {
		if rmErr := os.Remove(path); rmErr != nil {
			return id, rmErr
		}
	}
	return id, nil
}

// RemoveLast is a convenience for RemoveByIndex(0).
func RemoveLast() (string, error) {
	return RemoveByIndex(0)
}

// Clear deletes the entire replay root (Session Index and all session
// files), matching the `clear` command's all-or-nothing semantics.
func Clear() error {
	return paths.ClearReplayDir()
}
