// Package util provides formatting helpers shared across PodGrid.
package util

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateFormat is the standard date format for catalog display.
const DateFormat = "2006-01-02"

// NewSessionID returns a random identifier for this client session.
// It is sent with catalog API requests and attached to log records so a
// single run can be traced end to end.
func NewSessionID() string {
	return uuid.New().String()
}

// FormatDate formats a time as a date string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// RelativeTime returns a human-readable description of how long ago t
// was, relative to now. Future timestamps (clock skew in the catalog
// data) collapse to "just now".
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "yesterday"
		}
		return fmt.Sprintf("%d days ago", days)
	case diff < 30*24*time.Hour:
		return plural(int(diff.Hours()/24/7), "week")
	case diff < 365*24*time.Hour:
		return plural(int(diff.Hours()/24/30), "month")
	default:
		return plural(int(diff.Hours()/24/365), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
