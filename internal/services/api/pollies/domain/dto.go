// Package domain holds DTOs and ports for the pollies http and service contracts
package domain

import (
	"outofoffice/internal/core/roster"
	"outofoffice/internal/services/site"
)

// Summary is one person in the list endpoint
type Summary = site.IndexEntry

// Detail is the person endpoint payload
type Detail = site.PollieDoc

// DecadesInput filters the decade listing
type DecadesInput struct {
	SkipCurrent bool
	MinDecade   int
}

// CandidatesInput selects people still to research
type CandidatesInput struct {
	Strategy string
	Limit    int
}

// Candidate is a person to research with the brief to hand over
type Candidate struct {
	roster.Person
	SearchName string `json:"search_name"`
	GigCount   int    `json:"gig_count"`
	Brief      string `json:"brief,omitempty"`
}
