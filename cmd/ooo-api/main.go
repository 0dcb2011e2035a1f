// Command ooo-api serves the directory read endpoints and the editor's
// draft workflow
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"outofoffice/internal/core/version"
	"outofoffice/internal/platform/config"
	"outofoffice/internal/platform/logger"
	phttp "outofoffice/internal/platform/net/http"
	"outofoffice/internal/platform/net/middleware"
	"outofoffice/internal/services/api"
	"outofoffice/internal/services/directory"
	"outofoffice/internal/services/drafts"

	"github.com/go-chi/chi/v5"
)

func main() {
	showVersion := flag.Bool("version", false, "print the build stamp and exit")
	flag.Parse()
	if *showVersion {
		fmt.Println(version.Info("ooo-api"))
		return
	}

	// OOO_* for data and http, LOG_* for logging
	root := config.New().Prefix("OOO_")
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataDir := root.MayString("DATA_DIR", "./data")
	src, err := directory.NewSource(ctx, directory.Options{DataDir: dataDir})
	if err != nil {
		l.Fatal().Err(err).Str("data_dir", dataDir).Msg("directory load failed")
	}

	store, err := drafts.New(drafts.Options{Path: root.MayString("DRAFTS_FILE", "")})
	if err != nil {
		l.Fatal().Err(err).Msg("drafts store failed")
	}

	srv := phttp.NewServer(root, func(m *chi.Mux) {
		m.Use(middleware.Defaults()...)
		m.Use(middleware.Heartbeat("/ping"))
	})

	api.Mount(srv.Router(), api.Options{
		Config:         root,
		Logger:         l,
		Source:         src,
		Drafts:         store,
		GigsPath:       filepath.Join(dataDir, directory.GigsFile),
		CORSOrigins:    root.MayCSV("API_CORS_ORIGINS", nil),
		SlowRequest:    root.MayDuration("API_SLOW_REQUEST", 0),
		EnableProfiler: root.MayBool("API_PROFILER", false),
	})

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}
