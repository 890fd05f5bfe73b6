package format

import (
	"fmt"
	"time"
)

// Count formats an integer compactly: 532, 1.2k, 45k, 1.1M.
func Count(n int) string {
	switch {
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1fM", float64(n)/1_000_000))
	case n >= 10_000:
		return fmt.Sprintf("%dk", n/1000)
	case n >= 1_000:
		return trimZero(fmt.Sprintf("%.1fk", float64(n)/1000))
	default:
		return fmt.Sprintf("%d", n)
	}
}

// trimZero drops a redundant ".0" from a formatted count.
func trimZero(s string) string {
	if len(s) > 3 && s[len(s)-3:len(s)-1] == ".0" {
		return s[:len(s)-3] + s[len(s)-1:]
	}
	return s
}

// Age formats a duration as a compact human-readable age: "now", "5m", "2h",
// "3d", "2w", "3mo".
func Age(d time.Duration) string {
	if d < time.Minute {
		return "now"
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	days := int(d.Hours() / 24)
	if days < 7 {
		return fmt.Sprintf("%dd", days)
	}
	if days < 30 {
		return fmt.Sprintf("%dw", days/7)
	}
	return fmt.Sprintf("%dmo", days/30)
}
