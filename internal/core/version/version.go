// Package version reports what build of the tools is running
package version

import "runtime/debug"

// BuildInfo is the build stamp served by /meta/version and printed by the CLIs
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// set with -ldflags "-X 'outofoffice/internal/core/version.version=v0.1.0'
// -X 'outofoffice/internal/core/version.commit=abcd' -X 'outofoffice/internal/core/version.date=2025-11-02'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the stamp for service. Without ldflags the commit and date
// fall back to the VCS settings the go tool embeds
func Info(service string) BuildInfo {
	bi := BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if bi.Commit == "none" && s.Value != "" {
					bi.Commit = s.Value
				}
			case "vcs.time":
				if bi.Date == "unknown" && s.Value != "" {
					bi.Date = s.Value
				}
			}
		}
	}
	return bi
}

// String is the one line form used by -version flags
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ", " + b.Date + ")"
}
