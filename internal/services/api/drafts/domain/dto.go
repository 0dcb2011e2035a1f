// Package domain holds DTOs for the drafts http and service contracts
package domain

// LastPollieInput sets the editor's current person
type LastPollieInput struct {
	Slug string `json:"slug" validate:"required,max=200"`
}

// LastPollie is the editor's current person
type LastPollie struct {
	Slug string `json:"slug"`
	Name string `json:"name,omitempty"`
}

// Preview is the result of applying the drafts without writing anything
type Preview struct {
	Current int `json:"current"`
	Pending int `json:"pending"`
	Total   int `json:"total"`
}

// Committed reports a commit into gigs.json
type Committed struct {
	Added int `json:"added"`
	Total int `json:"total"`
}
