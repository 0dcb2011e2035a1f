package listing

import (
	"sort"

	"outofoffice/internal/core/roster"
)

// Option is one entry of the editor's person picker
type Option struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// PickerOptions lists every person once, in name order. The first record seen
// for a slug names the option
func PickerOptions(people []roster.Person) []Option {
	seen := make(map[string]struct{}, len(people))
	out := make([]Option, 0, len(people))
	for _, p := range people {
		if _, ok := seen[p.Slug]; ok {
			continue
		}
		seen[p.Slug] = struct{}{}
		out = append(out, Option{Slug: p.Slug, Name: p.Name})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := byName(out[i].Name, out[j].Name); c != 0 {
			return c < 0
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}
