package gigs

import (
	"errors"
	"fmt"
	"strings"

	perr "outofoffice/internal/platform/errors"
	"outofoffice/internal/platform/validate"
)

func init() {
	validate.MustRegister("gig_category", "{0} must be one of the gig categories", func(fl validate.FieldLevel) bool {
		return IsCategory(fl.Field().String())
	})
}

// Problem is one schema failure inside a collection
type Problem struct {
	Index   int    `json:"index"`
	Slug    string `json:"pollie_slug,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	if p.Slug != "" {
		return fmt.Sprintf("[%d] %s: %s", p.Index, p.Slug, p.Message)
	}
	return fmt.Sprintf("[%d]: %s", p.Index, p.Message)
}

// Problems lists every invalid entry of a rejected collection
type Problems []Problem

func (ps Problems) Error() string {
	lines := make([]string, len(ps))
	for i, p := range ps {
		lines[i] = p.String()
	}
	return strings.Join(lines, "; ")
}

// Validate checks one gig
func Validate(g Gig) error { return validate.Struct(g) }

// ValidateAll checks every gig and rejects the collection if any entry
// fails. The error has code Validation, wraps Problems, and carries the
// first offending field as "[i].field"
func ValidateAll(gs []Gig) error {
	var probs Problems
	for i, g := range gs {
		err := Validate(g)
		if err == nil {
			continue
		}
		e, ok := perr.As(err)
		if !ok || e.Code() != perr.ErrorCodeValidation {
			return err
		}
		probs = append(probs, Problem{Index: i, Slug: g.PollieSlug, Field: e.Field(), Message: e.Message()})
	}
	if len(probs) == 0 {
		return nil
	}
	err := perr.Wrapf(probs, perr.ErrorCodeValidation, "%d of %d gigs invalid", len(probs), len(gs))
	return perr.WithField(err, fmt.Sprintf("[%d].%s", probs[0].Index, probs[0].Field))
}

// ProblemsOf extracts the per-entry failures from a ValidateAll error
func ProblemsOf(err error) (Problems, bool) {
	var ps Problems
	if errors.As(err, &ps) {
		return ps, true
	}
	return nil, false
}
