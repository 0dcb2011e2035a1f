package roster

import "outofoffice/internal/core/dates"

// Merge collapses repeated terms to one Person per slug, in order of first
// appearance. An incoming term replaces the kept one when
//   - it is active and the kept one is not, or
//   - neither is active and it ended strictly later.
//
// Otherwise the kept term stays, so of two active terms the first wins
func Merge(people []Person) []Person {
	idx := make(map[string]int, len(people))
	out := make([]Person, 0, len(people))
	for _, p := range people {
		i, seen := idx[p.Slug]
		if !seen {
			idx[p.Slug] = len(out)
			out = append(out, p)
			continue
		}
		if supersedes(p, out[i]) {
			out[i] = p
		}
	}
	return out
}

func supersedes(incoming, kept Person) bool {
	if incoming.Active() {
		return !kept.Active()
	}
	return !kept.Active() && dates.Later(incoming.TenureEnd, kept.TenureEnd)
}

// Index maps slug to person; later duplicates win, so pass merged input
func Index(people []Person) map[string]Person {
	m := make(map[string]Person, len(people))
	for _, p := range people {
		m[p.Slug] = p
	}
	return m
}
