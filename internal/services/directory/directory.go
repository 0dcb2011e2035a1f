// Package directory loads the data directory into one immutable snapshot:
// merged people, validated gigs and the views built from them
package directory

import (
	"context"
	"path/filepath"
	"time"

	"outofoffice/internal/core/gigs"
	"outofoffice/internal/core/listing"
	"outofoffice/internal/core/roster"
	"outofoffice/internal/core/table"
	perr "outofoffice/internal/platform/errors"
	"outofoffice/internal/platform/logger"
)

// Table is one roster file and the chamber its rows default to
type Table struct {
	File    string
	Chamber roster.Chamber
}

// DefaultTables are read in this order, so on equal tenure a
// representatives row beats a senators row
var DefaultTables = []Table{
	{File: "representatives.csv", Chamber: roster.Reps},
	{File: "senators.csv", Chamber: roster.Senate},
}

// GigsFile is the curated gigs collection inside the data directory
const GigsFile = "gigs.json"

// Options for Load
type Options struct {
	DataDir string
	// Tables overrides DefaultTables
	Tables []Table
	// Now stamps the snapshot; zero means time.Now
	Now func() time.Time
}

// Stats summarises a load
type Stats struct {
	Rows         int       `json:"rows"`
	Skipped      int       `json:"skipped"`
	People       int       `json:"people"`
	Sitting      int       `json:"sitting"`
	Gigs         int       `json:"gigs"`
	VerifiedGigs int       `json:"verified_gigs"`
	Missing      []string  `json:"missing,omitempty"`
	LoadedAt     time.Time `json:"loaded_at"`
}

// Directory is a loaded snapshot. It is never mutated after Load, so it
// can be shared between goroutines
type Directory struct {
	people []roster.Person
	index  map[string]roster.Person
	gigs   []gigs.Gig
	bySlug map[string][]gigs.Gig
	stats  Stats
}

// Load reads every table and the gigs file under opts.DataDir. Missing
// files count as empty; an unreadable file or an invalid gigs collection
// fails the whole load
func Load(ctx context.Context, opts Options) (*Directory, error) {
	ctx = logger.WithOp(ctx, "directory.load")
	log := logger.C(ctx)

	tables := opts.Tables
	if len(tables) == 0 {
		tables = DefaultTables
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	var (
		all   []roster.Person
		stats Stats
	)
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "load cancelled")
		}
		path := filepath.Join(opts.DataDir, t.File)
		rows, found, err := table.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if !found {
			log.Warn().Str("file", t.File).Msg("roster table missing, treating as empty")
			stats.Missing = append(stats.Missing, t.File)
			continue
		}
		people, skipped := roster.FromTable(rows, t.Chamber)
		if skipped > 0 {
			log.Debug().Str("file", t.File).Int("skipped", skipped).Msg("rows without a name skipped")
		}
		stats.Rows += len(people) + skipped
		stats.Skipped += skipped
		all = append(all, people...)
	}

	merged := roster.Merge(all)

	gs, found, err := gigs.ReadFile(filepath.Join(opts.DataDir, GigsFile))
	if err != nil {
		return nil, err
	}
	if !found {
		stats.Missing = append(stats.Missing, GigsFile)
	}

	d := newDirectory(merged, gs)
	stats.People = len(merged)
	for _, p := range merged {
		if p.StillInOffice {
			stats.Sitting++
		}
	}
	stats.Gigs = len(gs)
	for _, g := range gs {
		if g.Verified() {
			stats.VerifiedGigs++
		}
	}
	stats.LoadedAt = now().UTC()
	d.stats = stats

	log.Info().
		Int("rows", stats.Rows).
		Int("people", stats.People).
		Int("sitting", stats.Sitting).
		Int("gigs", stats.Gigs).
		Msg("directory loaded")
	return d, nil
}

// New builds a snapshot from already merged people and validated gigs
func New(people []roster.Person, gs []gigs.Gig) *Directory {
	d := newDirectory(people, gs)
	d.stats = Stats{People: len(people), Gigs: len(gs), LoadedAt: time.Now().UTC()}
	return d
}

func newDirectory(people []roster.Person, gs []gigs.Gig) *Directory {
	return &Directory{
		people: people,
		index:  roster.Index(people),
		gigs:   gs,
		bySlug: gigs.GroupByPerson(gs),
	}
}

// People returns the merged people in order of first appearance
func (d *Directory) People() []roster.Person { return d.people }

// Person looks up one person by slug
func (d *Directory) Person(slug string) (roster.Person, bool) {
	p, ok := d.index[slug]
	return p, ok
}

// Gigs returns the whole gigs collection in file order
func (d *Directory) Gigs() []gigs.Gig { return d.gigs }

// GigsFor returns slug's gigs in file order; nil when there are none
func (d *Directory) GigsFor(slug string) []gigs.Gig { return d.bySlug[slug] }

// GigCounts counts gigs per slug
func (d *Directory) GigCounts(verifiedOnly bool) map[string]int {
	return gigs.CountByPerson(d.gigs, verifiedOnly)
}

// Decades buckets the people for the browse page
func (d *Directory) Decades(opts listing.Options) []listing.Bucket {
	return listing.Decades(d.people, opts)
}

// Options is the editor's person picker
func (d *Directory) Options() []listing.Option { return listing.PickerOptions(d.people) }

// Stats describes the load that built d
func (d *Directory) Stats() Stats { return d.stats }
