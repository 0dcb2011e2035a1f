package domain

import "context"

// Lookup is the cross module view other modules use to resolve people
type Lookup interface {
	Exists(ctx context.Context, slug string) (bool, error)
	Name(ctx context.Context, slug string) (string, error)
}
