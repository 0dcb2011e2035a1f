// Command ooo-build writes the static site's JSON documents from the data
// directory
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"outofoffice/internal/core/version"
	"outofoffice/internal/platform/config"
	"outofoffice/internal/platform/logger"
	"outofoffice/internal/services/directory"
	"outofoffice/internal/services/site"
)

func main() {
	root := config.New().Prefix("OOO_")

	var (
		siteFile    = flag.String("site", root.MayString("SITE_FILE", "./site.yaml"), "site settings yaml; a missing file means defaults")
		dataDir     = flag.String("data", "", "data directory, overrides the settings")
		outDir      = flag.String("out", "", "output directory, overrides the settings")
		showVersion = flag.Bool("version", false, "print the build stamp and exit")
	)
	flag.Parse()
	if *showVersion {
		fmt.Println(version.Info("ooo-build"))
		return
	}

	l := logger.Get()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := site.LoadSettings(*siteFile)
	if err != nil {
		l.Fatal().Err(err).Str("site", *siteFile).Msg("site settings")
	}
	if *dataDir != "" {
		s.DataDir = *dataDir
	}
	if *outDir != "" {
		s.OutDir = *outDir
	}

	started := time.Now()
	d, err := directory.Load(ctx, directory.Options{DataDir: s.DataDir})
	if err != nil {
		l.Fatal().Err(err).Str("data_dir", s.DataDir).Msg("directory load failed")
	}
	rep, err := site.Build(ctx, d, s, time.Now())
	if err != nil {
		l.Fatal().Err(err).Str("out", s.OutDir).Msg("site build failed")
	}
	l.Info().
		Int("pollies", rep.Pollies).
		Int("files", len(rep.Files)).
		Dur("took", time.Since(started)).
		Msg("done")
}
