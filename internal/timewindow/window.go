// Package timewindow provides the time ranges a trending search can cover.
package timewindow

import (
	"fmt"
	"time"
)

// Window selects how far back the trending search looks for newly created
// repositories.
type Window string

const (
	Daily   Window = "daily"
	Weekly  Window = "weekly"
	Monthly Window = "monthly"
)

// All returns every valid window in display order.
func All() []Window {
	return []Window{Daily, Weekly, Monthly}
}

// Parse parses a window name like "daily", "weekly", or "monthly".
// Short forms ("d", "w", "m") are accepted for CLI convenience.
func Parse(s string) (Window, error) {
	switch s {
	case "daily", "day", "d":
		return Daily, nil
	case "weekly", "week", "w":
		return Weekly, nil
	case "monthly", "month", "m":
		return Monthly, nil
	default:
		return "", fmt.Errorf("invalid time window: %s (use daily, weekly, or monthly)", s)
	}
}

// Cutoff returns the creation-date cutoff for the window relative to now.
// Monthly uses a calendar month rather than a fixed 30 days.
func (w Window) Cutoff(now time.Time) time.Time {
	switch w {
	case Daily:
		return now.AddDate(0, 0, -1)
	case Monthly:
		return now.AddDate(0, -1, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// CutoffDate formats the cutoff as the ISO calendar date the search
// qualifier expects.
func (w Window) CutoffDate(now time.Time) string {
	return w.Cutoff(now).Format("2006-01-02")
}

// Label returns a human-readable label for display.
func (w Window) Label() string {
	switch w {
	case Daily:
		return "past day"
	case Monthly:
		return "past month"
	default:
		return "past week"
	}
}
