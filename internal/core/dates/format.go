package dates

import (
	"fmt"
	"time"
)

// Format renders t the way Australian English spells a long date,
// e.g. "18 May 2019". nil renders as ""
func Format(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2 January 2006")
}

// FormatMonthYear renders e.g. "June 2023"
func FormatMonthYear(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("January 2006")
}

// TimeAgo counts whole calendar months between t and now, ignoring days.
// Under a year it reads "N month(s) ago", otherwise "N year(s) ago"
func TimeAgo(t *time.Time, now time.Time) string {
	if t == nil {
		return ""
	}
	months := (now.Year()-t.Year())*12 + int(now.Month()) - int(t.Month())
	if months < 12 {
		return fmt.Sprintf("%d %s ago", months, plural(months, "month"))
	}
	years := months / 12
	return fmt.Sprintf("%d %s ago", years, plural(years, "year"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
