package modkit

import (
	"time"

	"outofoffice/internal/platform/config"
	"outofoffice/internal/platform/logger"
	"outofoffice/internal/services/directory"
	"outofoffice/internal/services/drafts"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf

	// Dir serves the current data snapshot
	Dir *directory.Source
	// Drafts is the editor's pending gigs
	Drafts *drafts.Store
	// GigsPath is where committed drafts are appended
	GigsPath string

	StartedAt time.Time
	Now       func() time.Time
}

// Clock returns Now or time.Now
func (d Deps) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Logger returns Log or the named root logger
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		ll := d.Log.With().Str("component", component).Logger()
		return &ll
	}
	return logger.Named(component)
}
