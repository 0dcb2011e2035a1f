package gigs

// GroupByPerson buckets gigs by pollie slug, keeping input order inside
// each bucket. A person with no gigs has no key; absence means none
func GroupByPerson(gs []Gig) map[string][]Gig {
	m := make(map[string][]Gig)
	for _, g := range gs {
		m[g.PollieSlug] = append(m[g.PollieSlug], g)
	}
	return m
}

// CountByPerson counts gigs per slug, optionally only verified ones. Zero
// counts have no key
func CountByPerson(gs []Gig, verifiedOnly bool) map[string]int {
	m := make(map[string]int)
	for _, g := range gs {
		if verifiedOnly && !g.Verified() {
			continue
		}
		m[g.PollieSlug]++
	}
	return m
}

// IndexedGig is a gig with its position in the source file, which the
// editor uses to address existing entries
type IndexedGig struct {
	Gig
	Index int `json:"index"`
}

// Indexed pairs each gig with its position
func Indexed(gs []Gig) []IndexedGig {
	out := make([]IndexedGig, len(gs))
	for i, g := range gs {
		out[i] = IndexedGig{Gig: g, Index: i}
	}
	return out
}
