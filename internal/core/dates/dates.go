// Package dates parses the two date spellings found in the source data and
// orders nullable instants. nil always means "unknown" or, for a tenure
// end, "still serving"
package dates

import (
	"strconv"
	"strings"
	"time"

	ptime "outofoffice/internal/platform/time"

	"github.com/araddon/dateparse"
)

// Parse reads DD.MM.YYYY (as written in the parliamentary tables) or any
// hyphenated ISO-8601 form. The result is UTC midnight of the calendar
// date. Empty or unrecognised input yields nil; it is never an error
func Parse(text string) *time.Time {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}
	if strings.Contains(s, "-") {
		return parseISO(s)
	}
	return parseDotted(s)
}

func parseDotted(s string) *time.Time {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return nil
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil
		}
		n[i] = v
	}
	d := ptime.Date(n[2], n[1], n[0])
	return &d
}

func parseISO(s string) *time.Time {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return &t
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return nil
	}
	d := ptime.Day(t)
	return &d
}

// Compare orders nullable instants with nil as the most recent value.
// It returns -1 if a is earlier than b, +1 if later, 0 if equal
func Compare(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}

// Later reports whether a is strictly more recent than b
func Later(a, b *time.Time) bool { return Compare(a, b) > 0 }

// Equal reports whether a and b denote the same instant (or are both nil)
func Equal(a, b *time.Time) bool { return Compare(a, b) == 0 }
