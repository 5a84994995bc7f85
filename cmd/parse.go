package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	minDescriptionLength = 10
	maxDescriptionLength = 80
	minDelayMS           = 10
)

// parseSessionIndex accepts the "replay@{<n>}" handle syntax and rejects
// any other shape.
func parseSessionIndex(s string) (uint32, error) {
	rest, ok := strings.CutPrefix(s, "replay@{")
	if !ok {
		return 0, fmt.Errorf("session handle must be of the form replay@{N}, got %q", s)
	}
	digits, ok := strings.CutSuffix(rest, "}")
	if !ok {
		return 0, fmt.Errorf("session handle must be of the form replay@{N}, got %q", s)
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid session index in %q", s)
	}
	return uint32(n), nil
}

// validateDescription enforces the length bound (10..=80) and rejects a
// pure integer, which would be ambiguous with a session index.
func validateDescription(s string) error {
	if len(s) < minDescriptionLength || len(s) > maxDescriptionLength {
		return fmt.Errorf("session description must be %d to %d characters long", minDescriptionLength, maxDescriptionLength)
	}
	if _, err := strconv.Atoi(s); err == nil {
		return fmt.Errorf("session description cannot be an integer")
	}
	return nil
}

// validateDelay enforces a 10ms floor whenever --delay is explicitly passed.
// explicit reports whether --delay was actually given on the command line.
func validateDelay(ms int, explicit bool) error {
	if explicit && ms < minDelayMS {
		return fmt.Errorf("--delay must be at least %dms", minDelayMS)
	}
	return nil
}
