// Package drafts holds gigs an editor has entered but not yet written to
// gigs.json, plus the last person they worked on
package drafts

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"outofoffice/internal/core/gigs"
	perr "outofoffice/internal/platform/errors"
	"outofoffice/internal/platform/logger"

	"github.com/google/uuid"
)

// Draft is a pending gig with a store assigned id
type Draft struct {
	ID string `json:"id"`
	gigs.Gig
}

// Options configures a Store
type Options struct {
	// Path persists the store as JSON after every change; "" keeps it in memory
	Path string
	// NewID overrides uuid generation
	NewID func() string
}

type state struct {
	Drafts     []Draft `json:"drafts"`
	LastPollie string  `json:"last_pollie,omitempty"`
}

// Store is safe for concurrent use
type Store struct {
	mu    sync.Mutex
	path  string
	newID func() string
	st    state
}

// New builds a store, loading opts.Path when it exists. A corrupt file is
// logged and replaced by an empty store on the next write
func New(opts Options) (*Store, error) {
	s := &Store{path: opts.Path, newID: opts.NewID}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.path == "" {
		return s, nil
	}

	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "read drafts %s", s.path)
	}
	if err := json.Unmarshal(b, &s.st); err != nil {
		logger.Named("drafts").Warn().Err(err).Str("path", s.path).Msg("drafts file unreadable, starting empty")
		s.st = state{}
	}
	return s, nil
}

// List returns a copy of the drafts in insertion order
func (s *Store) List() []Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.Drafts)
}

// Get returns one draft
func (s *Store) Get(id string) (Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(id)
	if i < 0 {
		return Draft{}, false
	}
	return s.st.Drafts[i], true
}

// Add validates g and appends it under a fresh id
func (s *Store) Add(g gigs.Gig) (Draft, error) {
	if err := gigs.Validate(g); err != nil {
		return Draft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := Draft{ID: s.newID(), Gig: g}
	s.st.Drafts = append(s.st.Drafts, d)
	return d, s.save()
}

// Update replaces the gig stored under id, keeping its position
func (s *Store) Update(id string, g gigs.Gig) (Draft, error) {
	if err := gigs.Validate(g); err != nil {
		return Draft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(id)
	if i < 0 {
		return Draft{}, perr.NotFoundf("draft %s not found", id)
	}
	s.st.Drafts[i] = Draft{ID: id, Gig: g}
	return s.st.Drafts[i], s.save()
}

// Delete removes id; deleting an unknown id reports false and changes nothing
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(id)
	if i < 0 {
		return false, nil
	}
	s.st.Drafts = slices.Delete(s.st.Drafts, i, i+1)
	return true, s.save()
}

// Clear drops every draft. The last pollie is kept
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Drafts = nil
	return s.save()
}

// LastPollie is the slug the editor last picked, "" if none
func (s *Store) LastPollie() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.LastPollie
}

// SetLastPollie remembers slug for the next session
func (s *Store) SetLastPollie(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.LastPollie = strings.TrimSpace(slug)
	return s.save()
}

// Gigs returns the drafts without their ids
func (s *Store) Gigs() []gigs.Gig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gigsOf(s.st.Drafts)
}

// Apply appends the drafts to current and validates the combined set. It
// never modifies the store or current
func (s *Store) Apply(current []gigs.Gig) ([]gigs.Gig, error) {
	pending := s.Gigs()
	all := make([]gigs.Gig, 0, len(current)+len(pending))
	all = append(all, current...)
	all = append(all, pending...)
	if err := gigs.ValidateAll(all); err != nil {
		return nil, err
	}
	return all, nil
}

// Commit appends the drafts to the gigs file at path and clears them. A failed
// append changes nothing. After a successful append the drafts stay cleared in
// memory even if the drafts file cannot be rewritten, so a retry cannot append
// them twice; that error is returned with the new gigs
func (s *Store) Commit(path string) ([]gigs.Gig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.st.Drafts) == 0 {
		return nil, perr.InvalidArgf("no drafts to commit")
	}
	all, err := gigs.AppendFile(path, gigsOf(s.st.Drafts))
	if err != nil {
		return nil, err
	}
	s.st.Drafts = nil
	if err := s.save(); err != nil {
		return all, perr.Wrapf(err, perr.ErrorCodeIO, "gigs committed to %s but drafts not cleared on disk", path)
	}
	return all, nil
}

func gigsOf(ds []Draft) []gigs.Gig {
	out := make([]gigs.Gig, len(ds))
	for i, d := range ds {
		out[i] = d.Gig
	}
	return out
}

func (s *Store) find(id string) int {
	return slices.IndexFunc(s.st.Drafts, func(d Draft) bool { return d.ID == id })
}

// save must run with mu held
func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	b, err := json.MarshalIndent(s.st, "", "  ")
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "encode drafts")
	}
	b = append(b, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".drafts-*.json")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "save drafts %s", s.path)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return perr.Wrapf(err, perr.ErrorCodeIO, "save drafts %s", s.path)
	}
	if err := tmp.Close(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "save drafts %s", s.path)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "save drafts %s", s.path)
	}
	return nil
}
