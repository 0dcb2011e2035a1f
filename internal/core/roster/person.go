// Package roster turns parliamentary table rows into typed people and
// merges repeated terms down to one record per person
package roster

import (
	"fmt"
	"strings"
	"time"
)

// Chamber is the house a term was served in
type Chamber uint8

const (
	// Reps is the House of Representatives
	Reps Chamber = iota + 1
	// Senate is the Senate
	Senate
)

// String returns "reps" or "senate"
func (c Chamber) String() string {
	switch c {
	case Reps:
		return "reps"
	case Senate:
		return "senate"
	default:
		return ""
	}
}

// ParseChamber accepts "reps" or "senate" in any case
func ParseChamber(s string) (Chamber, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reps":
		return Reps, true
	case "senate":
		return Senate, true
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler
func (c Chamber) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Chamber) UnmarshalText(b []byte) error {
	v, ok := ParseChamber(string(b))
	if !ok {
		return fmt.Errorf("unknown chamber %q", b)
	}
	*c = v
	return nil
}

// StillInOfficeReason is the reason column sentinel for a sitting member
const StillInOfficeReason = "still_in_office"

// Person is one term of service, and after Merge the winning term for a
// person. Text fields keep the table's spelling; missing columns are ""
type Person struct {
	Slug          string     `json:"slug"`
	Name          string     `json:"name"`
	Division      string     `json:"division"`
	State         string     `json:"state"`
	Party         string     `json:"party"`
	ElectedDate   string     `json:"elected_date,omitempty"`
	ElectionType  string     `json:"election_type,omitempty"`
	CeasedDate    string     `json:"ceased_date"`
	Reason        string     `json:"reason"`
	StillInOffice bool       `json:"still_in_office"`
	TenureEnd     *time.Time `json:"tenure_end"`
	Chamber       Chamber    `json:"chamber"`
}

// Key returns the join key
func (p Person) Key() string { return p.Slug }

// Active reports a term with no end instant. A sitting member is always
// active; so is a former member whose ceased date could not be read
func (p Person) Active() bool { return p.TenureEnd == nil }

// Status is "In office" for sitting members, else the reason column
func (p Person) Status() string {
	if p.StillInOffice {
		return "In office"
	}
	return p.Reason
}

// String is for logs
func (p Person) String() string {
	return fmt.Sprintf("%s (%s, %s)", p.Slug, p.Chamber, p.CeasedDate)
}
