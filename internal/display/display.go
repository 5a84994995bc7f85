// Package display renders one listing line per stored session from its
// Metadata projection.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/baptleduc/replay/internal/session"
)

const maxMessageLength = 50

// Line renders a single `replay@{n}: ...` listing line for meta, relative to
// now (pass time.Now() in production; a fixed time keeps tests stable).
func Line(n int, meta *session.Metadata, now time.Time) string {
	body := messageBody(meta)
	text := fmt.Sprintf("%s, %s", formatTimeAgo(now.Sub(meta.Timestamp)), body)
	return fmt.Sprintf("replay@{%d}: %s", n, truncate(text, maxMessageLength))
}

func messageBody(meta *session.Metadata) string {
	if meta.Description != nil {
		return "message: " + *meta.Description
	}
	return "commands: " + strings.Join(meta.FirstCommands, " | ")
}

// formatTimeAgo renders the coarsest non-zero unit: days, then hours, then
// minutes, then seconds.
func formatTimeAgo(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d >= 24*time.Hour:
		days := int(d / (24 * time.Hour))
		return fmt.Sprintf("%d days ago", days)
	case d >= time.Hour:
		hours := int(d / time.Hour)
		return fmt.Sprintf("%d hours ago", hours)
	case d >= time.Minute:
		minutes := int(d / time.Minute)
		return fmt.Sprintf("%d minutes ago", minutes)
	default:
		seconds := int(d / time.Second)
		return fmt.Sprintf("%d seconds ago", seconds)
	}
}

// truncate cuts s to max characters, appending "..." when it had to.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
