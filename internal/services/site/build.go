package site

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"outofoffice/internal/core/dates"
	"outofoffice/internal/core/gigs"
	"outofoffice/internal/core/listing"
	"outofoffice/internal/core/roster"
	perr "outofoffice/internal/platform/errors"
	"outofoffice/internal/platform/logger"
	"outofoffice/internal/services/directory"
)

// PollieDoc is pollies/<slug>.json
type PollieDoc struct {
	roster.Person
	Status        string     `json:"status"`
	LeftOffice    string     `json:"left_office,omitempty"`
	LeftOfficeAgo string     `json:"left_office_ago,omitempty"`
	PartyColour   string     `json:"party_colour,omitempty"`
	Gigs          []gigs.Gig `json:"gigs"`
}

// IndexEntry is one line of pollies/index.json
type IndexEntry struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Division string `json:"division"`
	State    string `json:"state"`
	Party    string `json:"party"`
	Gigs     int    `json:"gigs"`
}

// Meta is site.json
type Meta struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Canonical   string          `json:"canonical"`
	GeneratedAt time.Time       `json:"generated_at"`
	Stats       directory.Stats `json:"stats"`
}

// Report says what Build wrote
type Report struct {
	OutDir  string   `json:"out_dir"`
	Pollies int      `json:"pollies"`
	Files   []string `json:"files"`
}

// PollieDocFor builds the detail document for p as of now
func PollieDocFor(p roster.Person, gs []gigs.Gig, now time.Time) PollieDoc {
	doc := PollieDoc{
		Person:      p,
		Status:      p.Status(),
		PartyColour: roster.PartyColour(p.Party),
		Gigs:        gs,
	}
	if doc.Gigs == nil {
		doc.Gigs = []gigs.Gig{}
	}
	if !p.StillInOffice && p.TenureEnd != nil {
		doc.LeftOffice = dates.Format(p.TenureEnd)
		doc.LeftOfficeAgo = dates.TimeAgo(p.TenureEnd, now)
	}
	return doc
}

// EntryFor is p's line in the index given its gig count
func EntryFor(p roster.Person, gigCount int) IndexEntry {
	return IndexEntry{
		Slug:     p.Slug,
		Name:     p.Name,
		Division: p.Division,
		State:    p.State,
		Party:    p.Party,
		Gigs:     gigCount,
	}
}

// indexSlug names the listing under pollies/, so no person page may take it
const indexSlug = "index"

// Build writes every document for d under s.OutDir. The pollies directory
// is recreated so removed people leave no stale pages
func Build(ctx context.Context, d *directory.Directory, s Settings, now time.Time) (Report, error) {
	ctx = logger.WithOp(ctx, "site.build")
	log := logger.C(ctx)
	rep := Report{OutDir: s.OutDir}

	polliesDir := filepath.Join(s.OutDir, "pollies")
	if err := os.RemoveAll(polliesDir); err != nil {
		return rep, perr.Wrapf(err, perr.ErrorCodeIO, "clear %s", polliesDir)
	}
	if err := os.MkdirAll(polliesDir, 0o755); err != nil {
		return rep, perr.Wrapf(err, perr.ErrorCodeIO, "create %s", polliesDir)
	}

	write := func(rel string, v any) error {
		if err := writeJSON(filepath.Join(s.OutDir, rel), v); err != nil {
			return err
		}
		rep.Files = append(rep.Files, rel)
		return nil
	}

	people := d.People()
	counts := d.GigCounts(false)
	index := make([]IndexEntry, 0, len(people))
	for _, p := range people {
		if err := ctx.Err(); err != nil {
			return rep, perr.Wrap(err, perr.ErrorCodeUnavailable, "build cancelled")
		}
		if p.Slug == "" {
			continue
		}
		if p.Slug == indexSlug {
			log.Warn().Str("name", p.Name).Msg("slug clashes with pollies/index.json, page skipped")
			continue
		}
		if err := write(filepath.Join("pollies", p.Slug+".json"), PollieDocFor(p, d.GigsFor(p.Slug), now)); err != nil {
			return rep, err
		}
		index = append(index, EntryFor(p, counts[p.Slug]))
		rep.Pollies++
	}

	decades := d.Decades(listing.Options{SkipCurrent: s.SkipCurrent, MinDecade: s.MinDecade})
	if decades == nil {
		decades = []listing.Bucket{}
	}
	meta := Meta{
		Title:       s.Title,
		Description: s.Description,
		Canonical:   s.Canonical,
		GeneratedAt: now.UTC(),
		Stats:       d.Stats(),
	}

	for _, doc := range []struct {
		rel string
		v   any
	}{
		{filepath.Join("pollies", indexSlug+".json"), index},
		{"decades.json", decades},
		{"gigs.json", gigs.Indexed(d.Gigs())},
		{"options.json", d.Options()},
		{"site.json", meta},
	} {
		if err := write(doc.rel, doc.v); err != nil {
			return rep, err
		}
	}

	log.Info().Str("out", s.OutDir).Int("pollies", rep.Pollies).Int("files", len(rep.Files)).Msg("site built")
	return rep, nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "encode %s", filepath.Base(path))
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "write %s", path)
	}
	return nil
}
