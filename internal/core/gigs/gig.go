// Package gigs models post-office roles, validates the curated gigs.json
// collection as a whole, and groups gigs by person
package gigs

import (
	"strings"
	"time"

	"outofoffice/internal/core/dates"
)

// Gig is one post-office role. PollieSlug is a soft reference: gigs for
// unknown slugs load fine and are simply never looked up
type Gig struct {
	Role         string   `json:"role" validate:"required"`
	Organisation string   `json:"organisation" validate:"required"`
	Category     string   `json:"category" validate:"required,gig_category"`
	Sources      []string `json:"sources" validate:"min=1,dive,url"`
	VerifiedBy   string   `json:"verified_by,omitempty"`
	PollieSlug   string   `json:"pollie_slug" validate:"required"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
}

// Start returns the parsed start date; nil means unknown
func (g Gig) Start() *time.Time { return dates.Parse(g.StartDate) }

// End returns the parsed end date; nil means ongoing
func (g Gig) End() *time.Time { return dates.Parse(g.EndDate) }

// Ongoing reports a gig with no readable end date
func (g Gig) Ongoing() bool { return g.End() == nil }

// Verified reports whether someone vouched for the sources
func (g Gig) Verified() bool { return strings.TrimSpace(g.VerifiedBy) != "" }
