// Package candidates picks former members whose post-office roles still
// need researching
package candidates

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"outofoffice/internal/core/dates"
	"outofoffice/internal/core/gigs"
	"outofoffice/internal/core/roster"
)

// Strategy chooses who to research next
type Strategy string

const (
	// RecentNoGigs is the most recently departed members with no gigs
	RecentNoGigs Strategy = "recent-no-gigs"
	// RecentFewGigs is the most recently departed members with under FewGigs gigs
	RecentFewGigs Strategy = "recent-few-gigs"
	// Random is any member with no gigs, in table order
	Random Strategy = "random"
)

// FewGigs is the exclusive ceiling for RecentFewGigs
const FewGigs = 3

// Strategies lists every strategy, default first
var Strategies = []Strategy{RecentNoGigs, RecentFewGigs, Random}

// ParseStrategy accepts a strategy name; "" means RecentNoGigs
func ParseStrategy(s string) (Strategy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RecentNoGigs, nil
	}
	for _, st := range Strategies {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q (want one of %s, %s, %s)", s, RecentNoGigs, RecentFewGigs, Random)
}

// List returns former members matching strategy. The recent strategies are
// ordered most recently departed first, keeping table order for ties; an
// unreadable ceased date counts as most recent. limit <= 0 returns everyone
func List(people []roster.Person, gs []gigs.Gig, strategy Strategy, limit int) []roster.Person {
	counts := gigs.CountByPerson(gs, false)

	var out []roster.Person
	for _, p := range people {
		if p.StillInOffice {
			continue
		}
		n := counts[p.Slug]
		switch strategy {
		case RecentFewGigs:
			if n >= FewGigs {
				continue
			}
		default:
			if n > 0 {
				continue
			}
		}
		out = append(out, p)
	}

	if strategy != Random {
		sort.SliceStable(out, func(i, j int) bool {
			return dates.Compare(out[i].TenureEnd, out[j].TenureEnd) > 0
		})
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Select returns the person to research. An explicit slug wins over the
// strategy and may name anyone, sitting members included. Random draws
// uniformly from every candidate using rng
func Select(people []roster.Person, gs []gigs.Gig, strategy Strategy, explicitSlug string, rng *rand.Rand) (roster.Person, bool) {
	if explicitSlug != "" {
		for _, p := range people {
			if p.Slug == explicitSlug {
				return p, true
			}
		}
		return roster.Person{}, false
	}

	if strategy == Random {
		all := List(people, gs, strategy, 0)
		if len(all) == 0 {
			return roster.Person{}, false
		}
		return all[rng.IntN(len(all))], true
	}

	top := List(people, gs, strategy, 1)
	if len(top) == 0 {
		return roster.Person{}, false
	}
	return top[0], true
}

// SearchName shortens a full name to first and last name for web searches
func SearchName(full string) string {
	parts := strings.Fields(full)
	if len(parts) <= 2 {
		return strings.TrimSpace(full)
	}
	return parts[0] + " " + parts[len(parts)-1]
}

// Brief is the research brief handed to whoever looks for a person's gigs
func Brief(p roster.Person) string {
	left := "unknown"
	if p.CeasedDate != "" {
		if s := dates.FormatMonthYear(dates.Parse(p.CeasedDate)); s != "" {
			left = s
		}
	}
	seat := "Member for " + p.Division
	if p.Chamber == roster.Senate {
		seat = "Senator"
	}
	reason := p.Reason
	if reason == "" {
		reason = "unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Find roles taken by %s, a former Australian politician, since leaving parliament.\n\n", SearchName(p.Name))
	fmt.Fprintf(&b, "Background:\n- Party: %s\n- State: %s\n- %s\n- Left parliament: %s\n- Reason for leaving: %s\n\n",
		p.Party, p.State, seat, left, reason)
	b.WriteString("Include board seats, consulting and lobbying work, academic posts, corporate roles, ")
	b.WriteString("nonprofit work, government appointments and media roles.\n\n")
	b.WriteString("For each role give the title, the organisation, source URLs, a start date (YYYY-MM-DD) if known, ")
	b.WriteString("and a category from: ")
	b.WriteString(strings.Join(gigs.Categories, "; "))
	b.WriteString("\n")
	return b.String()
}
