// Package service implements the read side of the person directory over the
// live data snapshot
package service

import (
	"context"
	"time"

	"outofoffice/internal/core/candidates"
	"outofoffice/internal/core/listing"
	"outofoffice/internal/core/roster"
	perr "outofoffice/internal/platform/errors"
	"outofoffice/internal/services/api/pollies/domain"
	"outofoffice/internal/services/directory"
	"outofoffice/internal/services/site"
)

// Snapshot yields the directory currently being served
type Snapshot interface {
	Current() *directory.Directory
}

// Service reads people from the current snapshot
type Service interface {
	List(ctx context.Context) ([]domain.Summary, error)
	Get(ctx context.Context, slug string) (domain.Detail, error)
	Options(ctx context.Context) ([]listing.Option, error)
	Decades(ctx context.Context, in domain.DecadesInput) ([]listing.Bucket, error)
	Candidates(ctx context.Context, in domain.CandidatesInput) ([]domain.Candidate, error)
	Person(ctx context.Context, slug string) (roster.Person, bool, error)
}

type svc struct {
	src Snapshot
	now func() time.Time
}

// New constructs the service; now defaults to time.Now
func New(src Snapshot, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &svc{src: src, now: now}
}

func (s *svc) current() (*directory.Directory, error) {
	if s.src == nil {
		return nil, perr.Unavailablef("directory not loaded")
	}
	d := s.src.Current()
	if d == nil {
		return nil, perr.Unavailablef("directory not loaded")
	}
	return d, nil
}

func (s *svc) List(_ context.Context) ([]domain.Summary, error) {
	d, err := s.current()
	if err != nil {
		return nil, err
	}
	counts := d.GigCounts(false)
	out := make([]domain.Summary, 0, len(d.People()))
	for _, p := range d.People() {
		if p.Slug == "" {
			continue
		}
		out = append(out, site.EntryFor(p, counts[p.Slug]))
	}
	return out, nil
}

func (s *svc) Get(_ context.Context, slug string) (domain.Detail, error) {
	d, err := s.current()
	if err != nil {
		return domain.Detail{}, err
	}
	p, ok := d.Person(slug)
	if !ok {
		return domain.Detail{}, perr.NotFoundf("no pollie %q", slug)
	}
	return site.PollieDocFor(p, d.GigsFor(slug), s.now()), nil
}

func (s *svc) Options(_ context.Context) ([]listing.Option, error) {
	d, err := s.current()
	if err != nil {
		return nil, err
	}
	return d.Options(), nil
}

func (s *svc) Decades(_ context.Context, in domain.DecadesInput) ([]listing.Bucket, error) {
	d, err := s.current()
	if err != nil {
		return nil, err
	}
	out := d.Decades(listing.Options{SkipCurrent: in.SkipCurrent, MinDecade: in.MinDecade})
	if out == nil {
		out = []listing.Bucket{}
	}
	return out, nil
}

func (s *svc) Candidates(_ context.Context, in domain.CandidatesInput) ([]domain.Candidate, error) {
	strategy, err := candidates.ParseStrategy(in.Strategy)
	if err != nil {
		return nil, perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidArgument, "bad strategy"), "strategy")
	}
	d, err := s.current()
	if err != nil {
		return nil, err
	}
	counts := d.GigCounts(false)
	picked := candidates.List(d.People(), d.Gigs(), strategy, in.Limit)
	out := make([]domain.Candidate, 0, len(picked))
	for i, p := range picked {
		c := domain.Candidate{Person: p, SearchName: candidates.SearchName(p.Name), GigCount: counts[p.Slug]}
		// the brief is long; only the head of the queue needs it
		if i == 0 {
			c.Brief = candidates.Brief(p)
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *svc) Person(_ context.Context, slug string) (roster.Person, bool, error) {
	d, err := s.current()
	if err != nil {
		return roster.Person{}, false, err
	}
	p, ok := d.Person(slug)
	return p, ok, nil
}
