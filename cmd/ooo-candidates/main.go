// Command ooo-candidates prints the next former member to research, or the
// whole queue with -list
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"text/tabwriter"
	"time"

	"outofoffice/internal/core/candidates"
	"outofoffice/internal/core/version"
	"outofoffice/internal/platform/config"
	"outofoffice/internal/platform/logger"
	"outofoffice/internal/services/directory"
)

func main() {
	root := config.New().Prefix("OOO_")

	var (
		dataDir     = flag.String("data", root.MayString("DATA_DIR", "./data"), "data directory")
		strategy    = flag.String("strategy", string(candidates.RecentNoGigs), "recent-no-gigs, recent-few-gigs or random")
		slug        = flag.String("slug", "", "research this person regardless of strategy")
		list        = flag.Bool("list", false, "print the queue instead of one brief")
		limit       = flag.Int("limit", 20, "queue length for -list; 0 for everyone")
		seed        = flag.Uint64("seed", 0, "seed for the random strategy; 0 uses the clock")
		showVersion = flag.Bool("version", false, "print the build stamp and exit")
	)
	flag.Parse()
	if *showVersion {
		fmt.Println(version.Info("ooo-candidates"))
		return
	}

	l := logger.Get()
	st, err := candidates.ParseStrategy(*strategy)
	if err != nil {
		l.Fatal().Err(err).Msg("bad -strategy")
	}

	d, err := directory.Load(context.Background(), directory.Options{DataDir: *dataDir})
	if err != nil {
		l.Fatal().Err(err).Str("data_dir", *dataDir).Msg("directory load failed")
	}

	if *list {
		counts := d.GigCounts(false)
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "SLUG\tNAME\tLEFT\tGIGS")
		for _, p := range candidates.List(d.People(), d.Gigs(), st, *limit) {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", p.Slug, p.Name, p.CeasedDate, counts[p.Slug])
		}
		if err := tw.Flush(); err != nil {
			l.Fatal().Err(err).Msg("write")
		}
		return
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(s, s>>1|1))

	p, ok := candidates.Select(d.People(), d.Gigs(), st, *slug, rng)
	if !ok {
		if *slug != "" {
			l.Fatal().Str("slug", *slug).Msg("no such person")
		}
		l.Info().Str("strategy", string(st)).Msg("nobody left to research")
		return
	}
	l.Debug().Str("slug", p.Slug).Str("strategy", string(st)).Msg("selected")
	fmt.Print(candidates.Brief(p))
}
