// Command ooo-gigs checks gigs.json and folds a drafts file into it
//
//	ooo-gigs check [-data dir]
//	ooo-gigs apply -drafts file [-data dir] [-dry-run]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"outofoffice/internal/core/gigs"
	"outofoffice/internal/core/version"
	"outofoffice/internal/platform/config"
	"outofoffice/internal/platform/logger"
	"outofoffice/internal/services/directory"
	"outofoffice/internal/services/drafts"
)

func usage() {
	_, _ = fmt.Fprintln(os.Stderr, "usage: ooo-gigs check|apply|version [flags]")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	root := config.New().Prefix("OOO_")
	l := logger.Get()

	fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	dataDir := fs.String("data", root.MayString("DATA_DIR", "./data"), "data directory holding gigs.json")

	switch os.Args[1] {
	case "check":
		_ = fs.Parse(os.Args[2:])
		path := filepath.Join(*dataDir, directory.GigsFile)
		gs, found, err := gigs.ReadFile(path)
		if err != nil {
			if ps, ok := gigs.ProblemsOf(err); ok {
				for _, p := range ps {
					_, _ = fmt.Fprintln(os.Stderr, p)
				}
			}
			l.Fatal().Err(err).Str("path", path).Msg("gigs invalid")
		}
		if !found {
			l.Warn().Str("path", path).Msg("no gigs file")
			return
		}
		l.Info().
			Str("path", path).
			Int("gigs", len(gs)).
			Int("people", len(gigs.GroupByPerson(gs))).
			Int("verified_people", len(gigs.CountByPerson(gs, true))).
			Msg("gigs ok")

	case "apply":
		draftsFile := fs.String("drafts", root.MayString("DRAFTS_FILE", ""), "drafts file written by the API")
		dryRun := fs.Bool("dry-run", false, "validate the combined set without writing")
		_ = fs.Parse(os.Args[2:])
		if *draftsFile == "" {
			l.Fatal().Msg("-drafts is required")
		}
		store, err := drafts.New(drafts.Options{Path: *draftsFile})
		if err != nil {
			l.Fatal().Err(err).Msg("drafts store")
		}
		path := filepath.Join(*dataDir, directory.GigsFile)

		if *dryRun {
			current, _, err := gigs.ReadFile(path)
			if err != nil {
				l.Fatal().Err(err).Str("path", path).Msg("gigs invalid")
			}
			all, err := store.Apply(current)
			if err != nil {
				l.Fatal().Err(err).Msg("drafts would not apply")
			}
			l.Info().Int("current", len(current)).Int("total", len(all)).Msg("dry run ok")
			return
		}

		pending := len(store.List())
		all, err := store.Commit(path)
		if err != nil {
			l.Fatal().Err(err).Str("path", path).Msg("apply failed")
		}
		l.Info().Int("added", pending).Int("total", len(all)).Str("path", path).Msg("drafts applied")

	case "version", "-version", "--version":
		fmt.Println(version.Info("ooo-gigs"))

	default:
		usage()
	}
}
