// Package slug derives the identifier that joins people to their gigs.
// Every producer of pollie_slug values must go through Make
package slug

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// lowerPool holds composed-then-lowercased transformer chains; a Caser
// keeps state and is not safe for concurrent use
var lowerPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFC, cases.Lower(language.Und))
	},
}

// Make lower-cases name, drops straight and curly apostrophes, collapses
// each run of characters outside [a-z0-9] to one hyphen, and trims hyphens
// from both ends. Distinct names can collide; nothing disambiguates them
func Make(name string) string {
	if name == "" {
		return ""
	}

	tr := lowerPool.Get().(transform.Transformer)
	lower, _, err := transform.String(tr, name)
	tr.Reset()
	lowerPool.Put(tr)
	if err != nil {
		lower = strings.ToLower(name)
	}

	var b strings.Builder
	b.Grow(len(lower))
	pendingHyphen := false
	for _, r := range lower {
		switch {
		case r == '\'' || r == '’':
			continue
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
