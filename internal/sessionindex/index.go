// Package sessionindex implements a fixed-width append-only log of session
// ids: O(1) indexed lookup, removal cost proportional to the bytes after
// the removed record, and trivial reverse iteration. Ordinal 0 is always
// the most recently appended id.
package sessionindex

import (
	"io"
	"os"

	"github.com/baptleduc/replay/internal/paths"
	"github.com/baptleduc/replay/internal/replayerr"
)

// RecordWidth is the fixed size, in bytes, of one index record: a lowercase
// hex SHA-256 digest. Format rigidity here is load-bearing, so it is never
// configurable.
const RecordWidth = 64

func openFile() (*os.File, error) {
	path, err := paths.IndexPath()
	if err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
}

// Push appends id (which must be exactly RecordWidth bytes) to the index.
func Push(id string) error {
	f, err := openFile()
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return err
	}
	_, err = f.WriteString(id)
	return err
}

func idOffset(fileSize int64, n uint32) (int64, error) {
	if fileSize == 0 {
		return 0, replayerr.ErrNoEntries
	}
	totalRecords := fileSize / RecordWidth
	if int64(n) >= totalRecords {
		return 0, replayerr.ErrIndexOutOfRange
	}
	return fileSize - (int64(n)+1)*RecordWidth, nil
}

// GetIDOffset resolves the byte offset of the nth most-recent entry
// (n=0 is newest). Returns ErrNoEntries if the index is empty, or
// ErrIndexOutOfRange if n is not less than the number of entries.
func GetIDOffset(n uint32) (int64, error) {
	f, err := openFile()
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return idOffset(info.Size(), n)
}

// ReadID seeks to offset and reads exactly RecordWidth bytes, returning the
// hex session id stored there.
func ReadID(offset int64) (string, error) {
	f, err := openFile()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return readIDAt(f, offset)
}

func readIDAt(f *os.File, offset int64) (string, error) {
	buf := make([]byte, RecordWidth)
	if _, err := f.ReadAt(buf, offset); err != nil {
		return "", err
	}
	return string(buf), nil
}

// GetID returns the nth most-recent session id without mutating the index.
func GetID(n uint32) (string, error) {
	f, err := openFile()
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	offset, err := idOffset(info.Size(), n)
	if err != nil {
		return "", err
	}
	return readIDAt(f, offset)
}

// Remove reads the nth most-recent session id, then removes its record by
// copying the bytes after it over it and truncating the file. It returns
// the removed id so the caller can locate and delete the session's file.
// This operation is not crash-safe — a crash mid-remove can leave the index
// in an inconsistent state, which is an accepted tradeoff for a
// single-writer local tool.
func Remove(n uint32) (string, error) {
	f, err := openFile()
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	offset, err := idOffset(info.Size(), n)
	if err != nil {
		return "", err
	}

	id, err := readIDAt(f, offset)
	if err != nil {
		return "", err
	}

	tail, err := io.ReadAll(io.NewSectionReader(f, offset+RecordWidth, info.Size()-offset-RecordWidth))
	if err != nil {
		return "", err
	}

	if err := f.Truncate(offset); err != nil {
		return "", err
	}
	if _, err := f.WriteAt(tail, offset); err != nil {
		return "", err
	}
	return id, nil
}

// IterRev returns the stored ids from newest to oldest.
func IterRev() ([]string, error) {
	f, err := openFile()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	total := info.Size() / RecordWidth
	ids := make([]string, 0, total)
	for i := total - 1; i >= 0; i-- {
		id, err := readIDAt(f, i*RecordWidth)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
