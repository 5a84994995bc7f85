// Package paths resolves the on-disk layout of the replay store: the root
// directory ($HOME/.replay, redirected under a temp root in tests), the
// session index file, and the per-session sessions directory.
package paths

import (
	"os"
	"path/filepath"
)

// rootOverride lets tests redirect the replay root to a temp directory
// without touching the real user's home.
var rootOverride string

// SetRootForTest points the replay root at dir for the duration of a test.
// It returns a restore function the caller should defer.
func SetRootForTest(dir string) (restore func()) {
	prev := rootOverride
	rootOverride = dir
	return func() { rootOverride = prev }
}

func baseDir() (string, error) {
	if rootOverride != "" {
		return rootOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return home, nil
}

// Root returns the replay root directory, creating it if necessary.
func Root() (string, error) {
	base, err := baseDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, ".replay")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// SessionsDir returns the sessions/ directory under the replay root,
// creating it if necessary.
func SessionsDir() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, "sessions")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// IndexPath returns the path to the session_idx file under the replay root.
func IndexPath() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "session_idx"), nil
}

// SessionPath returns the path to a session file of the given extension
// ("json" or "zst") under sessions/.
func SessionPath(id, extension string) (string, error) {
	dir, err := SessionsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, id+"."+extension), nil
}

// ClearReplayDir removes the entire replay root. It is not an error if the
// directory does not exist.
func ClearReplayDir() error {
	base, err := baseDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(base, ".replay")
	if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
		return nil
	}
	return os.RemoveAll(dir)
}
