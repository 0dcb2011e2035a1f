// Package service implements the editor's draft workflow over the draft
// store and the live snapshot
package service

import (
	"context"
	"strings"

	"outofoffice/internal/core/gigs"
	perr "outofoffice/internal/platform/errors"
	"outofoffice/internal/platform/logger"
	"outofoffice/internal/services/api/drafts/domain"
	pollies "outofoffice/internal/services/api/pollies/domain"
	"outofoffice/internal/services/directory"
	"outofoffice/internal/services/drafts"
)

// Source is the live snapshot, reloaded after a commit
type Source interface {
	Current() *directory.Directory
	Reload(context.Context) (*directory.Directory, error)
}

// Deps are the service dependencies. People and GigsPath are optional:
// without People any slug is accepted, without GigsPath commit is refused
type Deps struct {
	Store    *drafts.Store
	Source   Source
	People   pollies.Lookup
	GigsPath string
}

// Service is the draft workflow
type Service interface {
	List(ctx context.Context) []drafts.Draft
	Add(ctx context.Context, g gigs.Gig, editor string) (drafts.Draft, error)
	Update(ctx context.Context, id string, g gigs.Gig, editor string) (drafts.Draft, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	LastPollie(ctx context.Context) (domain.LastPollie, error)
	SetLastPollie(ctx context.Context, slug string) (domain.LastPollie, error)
	Preview(ctx context.Context) (domain.Preview, error)
	Commit(ctx context.Context) (domain.Committed, error)
}

type svc struct{ deps Deps }

// New constructs the service
func New(d Deps) Service { return &svc{deps: d} }

func (s *svc) List(_ context.Context) []drafts.Draft {
	out := s.deps.Store.List()
	if out == nil {
		out = []drafts.Draft{}
	}
	return out
}

// prepare attributes g to editor when it carries no attribution and checks
// the person exists
func (s *svc) prepare(ctx context.Context, g gigs.Gig, editor string) (gigs.Gig, error) {
	if strings.TrimSpace(g.VerifiedBy) == "" {
		g.VerifiedBy = strings.TrimSpace(editor)
	}
	if s.deps.People == nil {
		return g, nil
	}
	ok, err := s.deps.People.Exists(ctx, g.PollieSlug)
	if err != nil {
		return g, err
	}
	if !ok {
		return g, perr.WithField(perr.InvalidArgf("no pollie %q", g.PollieSlug), "pollie_slug")
	}
	return g, nil
}

func (s *svc) Add(ctx context.Context, g gigs.Gig, editor string) (drafts.Draft, error) {
	g, err := s.prepare(ctx, g, editor)
	if err != nil {
		return drafts.Draft{}, err
	}
	d, err := s.deps.Store.Add(g)
	if err != nil {
		return drafts.Draft{}, err
	}
	if err := s.deps.Store.SetLastPollie(g.PollieSlug); err != nil {
		return d, err
	}
	logger.C(ctx).Debug().Str("draft", d.ID).Str("pollie", g.PollieSlug).Msg("draft added")
	return d, nil
}

func (s *svc) Update(ctx context.Context, id string, g gigs.Gig, editor string) (drafts.Draft, error) {
	g, err := s.prepare(ctx, g, editor)
	if err != nil {
		return drafts.Draft{}, err
	}
	return s.deps.Store.Update(id, g)
}

func (s *svc) Delete(_ context.Context, id string) error {
	ok, err := s.deps.Store.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return perr.NotFoundf("draft %s not found", id)
	}
	return nil
}

func (s *svc) Clear(_ context.Context) error { return s.deps.Store.Clear() }

func (s *svc) LastPollie(ctx context.Context) (domain.LastPollie, error) {
	out := domain.LastPollie{Slug: s.deps.Store.LastPollie()}
	if out.Slug == "" || s.deps.People == nil {
		return out, nil
	}
	name, err := s.deps.People.Name(ctx, out.Slug)
	if err != nil {
		return out, err
	}
	out.Name = name
	return out, nil
}

func (s *svc) SetLastPollie(ctx context.Context, slug string) (domain.LastPollie, error) {
	if s.deps.People != nil {
		ok, err := s.deps.People.Exists(ctx, strings.TrimSpace(slug))
		if err != nil {
			return domain.LastPollie{}, err
		}
		if !ok {
			return domain.LastPollie{}, perr.WithField(perr.InvalidArgf("no pollie %q", slug), "slug")
		}
	}
	if err := s.deps.Store.SetLastPollie(slug); err != nil {
		return domain.LastPollie{}, err
	}
	return s.LastPollie(ctx)
}

func (s *svc) current() ([]gigs.Gig, error) {
	if s.deps.Source == nil || s.deps.Source.Current() == nil {
		return nil, perr.Unavailablef("directory not loaded")
	}
	return s.deps.Source.Current().Gigs(), nil
}

func (s *svc) Preview(_ context.Context) (domain.Preview, error) {
	cur, err := s.current()
	if err != nil {
		return domain.Preview{}, err
	}
	all, err := s.deps.Store.Apply(cur)
	if err != nil {
		return domain.Preview{}, err
	}
	return domain.Preview{Current: len(cur), Pending: len(all) - len(cur), Total: len(all)}, nil
}

func (s *svc) Commit(ctx context.Context) (domain.Committed, error) {
	if s.deps.GigsPath == "" {
		return domain.Committed{}, perr.Unavailablef("commit is not enabled")
	}
	pending := len(s.deps.Store.List())
	all, commitErr := s.deps.Store.Commit(s.deps.GigsPath)
	if all == nil {
		return domain.Committed{}, commitErr
	}
	logger.C(ctx).Info().Int("added", pending).Int("total", len(all)).Str("path", s.deps.GigsPath).Msg("drafts committed")

	// the gigs file changed even if the drafts file could not be rewritten
	if s.deps.Source != nil {
		if _, err := s.deps.Source.Reload(ctx); err != nil {
			return domain.Committed{Added: pending, Total: len(all)}, perr.Wrap(err, perr.ErrorCodeUnavailable, "committed but reload failed")
		}
	}
	return domain.Committed{Added: pending, Total: len(all)}, commitErr
}
