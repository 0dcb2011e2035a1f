// Package listing orders merged people for the browse pages: decade
// buckets by end of tenure and the alphabetical picker list
package listing

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"outofoffice/internal/core/dates"
	"outofoffice/internal/core/roster"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CurrentLabel labels the leading bucket of people still serving
const CurrentLabel = "Current"

// Item is the display subset of a person
type Item struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	Division   string `json:"division"`
	State      string `json:"state"`
	Party      string `json:"party"`
	CeasedDate string `json:"ceased_date"`
}

// Bucket is one labelled group of the listing
type Bucket struct {
	Label   string `json:"label"`
	Pollies []Item `json:"pollies"`
}

// Options tunes Decades
type Options struct {
	// SkipCurrent leaves people with no end of tenure out of the listing
	// instead of giving them a leading "Current" bucket
	SkipCurrent bool
	// MinDecade drops buckets for decades before it; 0 keeps everything
	MinDecade int
}

func itemOf(p roster.Person) Item {
	return Item{
		Slug:       p.Slug,
		Name:       p.Name,
		Division:   p.Division,
		State:      p.State,
		Party:      p.Party,
		CeasedDate: p.CeasedDate,
	}
}

// collators are not safe for concurrent use
var collators = sync.Pool{New: func() any { return collate.New(language.English) }}

func byName(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}

// decadeOf returns the decade a tenure ended in. A nil end has no decade
func decadeOf(end *time.Time) (int, bool) {
	if end == nil {
		return 0, false
	}
	return end.Year() / 10 * 10, true
}

// Decades buckets people by the decade their tenure ended, most recent
// decade first. Inside a bucket people are most recent first, ties by name.
// People without an end (sitting members and unreadable ceased dates) go
// to a leading "Current" bucket in name order unless SkipCurrent is set
func Decades(people []roster.Person, opts Options) []Bucket {
	var current, former []roster.Person
	for _, p := range people {
		if p.TenureEnd == nil {
			current = append(current, p)
		} else {
			former = append(former, p)
		}
	}

	sort.SliceStable(current, func(i, j int) bool {
		return byName(current[i].Name, current[j].Name) < 0
	})
	sort.SliceStable(former, func(i, j int) bool {
		if c := dates.Compare(former[i].TenureEnd, former[j].TenureEnd); c != 0 {
			return c > 0
		}
		return byName(former[i].Name, former[j].Name) < 0
	})

	var out []Bucket
	if !opts.SkipCurrent && len(current) > 0 {
		b := Bucket{Label: CurrentLabel, Pollies: make([]Item, 0, len(current))}
		for _, p := range current {
			b.Pollies = append(b.Pollies, itemOf(p))
		}
		out = append(out, b)
	}

	// former is sorted by end descending, so decades arrive in descending order
	last := -1
	for _, p := range former {
		decade, ok := decadeOf(p.TenureEnd)
		if !ok || decade < opts.MinDecade {
			continue
		}
		if decade != last {
			out = append(out, Bucket{Label: fmt.Sprintf("%ds", decade)})
			last = decade
		}
		b := &out[len(out)-1]
		b.Pollies = append(b.Pollies, itemOf(p))
	}
	return out
}
