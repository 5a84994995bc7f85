// Package config loads the optional ~/.replay/config.yaml with a
// graceful-degradation policy: a missing, unreadable, or malformed file
// never aborts the CLI — it falls back to the default Config (DefaultShell,
// compression on), logging a warning unless the file is simply missing.
package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultShell is spawned by the PTY Supervisor unless overridden.
const DefaultShell = "/bin/bash"

// Config is the user-editable subset of supervisor behavior. The session
// index record width is deliberately absent: it's fixed at 64 bytes, and
// format rigidity there is load-bearing, not configurable.
type Config struct {
	Shell         string `yaml:"shell,omitempty"`
	NoCompression bool   `yaml:"no_compression,omitempty"`
}

// Load reads <home>/.replay/config.yaml. On any failure to locate, read, or
// parse the file it returns a Config with DefaultShell filled in, never an
// error — config problems must not block record/run. A missing file is
// silent; every other failure logs a warning.
func Load() *Config {
	cfg := &Config{Shell: DefaultShell}

	home, err := os.UserHomeDir()
	if err != nil {
		logrus.WithError(err).Warn("could not resolve home directory, using default config")
		return cfg
	}

	path := filepath.Join(home, ".replay", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).WithField("path", path).Warn("could not read config file, using default config")
		}
		return cfg
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("could not parse config file, using default config")
		return cfg
	}

	if parsed.Shell != "" {
		cfg.Shell = parsed.Shell
	}
	cfg.NoCompression = parsed.NoCompression
	return cfg
}
