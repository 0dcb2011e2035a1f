// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"sort"
	"time"

	"outofoffice/internal/platform/config"
	"outofoffice/internal/platform/logger"
	phttp "outofoffice/internal/platform/net/http"
	"outofoffice/internal/platform/net/middleware"
	"outofoffice/internal/services/directory"
	"outofoffice/internal/services/drafts"

	"outofoffice/internal/modkit"
	"outofoffice/internal/modkit/httpkit"
	"outofoffice/internal/modkit/module"

	draftsmod "outofoffice/internal/services/api/drafts/module"
	gigsmod "outofoffice/internal/services/api/gigs/module"
	metamod "outofoffice/internal/services/api/meta/module"
	polliesdomain "outofoffice/internal/services/api/pollies/domain"
	polliesmod "outofoffice/internal/services/api/pollies/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Source         *directory.Source
	Drafts         *drafts.Store
	GigsPath       string
	CORSOrigins    []string
	SlowRequest    time.Duration
	EnableProfiler bool
	Now            func() time.Time
}

// Mount mounts the API service onto the given router and returns the
// registry of module ports it built
func Mount(r phttp.Router, opt Options) *module.Registry {
	deps := modkit.Deps{
		Log:      opt.Logger,
		Cfg:      opt.Config,
		Dir:      opt.Source,
		Drafts:   opt.Drafts,
		GigsPath: opt.GigsPath,
		Now:      opt.Now,
	}
	deps.StartedAt = deps.Clock()

	reg := module.NewRegistry()

	// pollies first so drafts can resolve people through its Lookup port
	pollies := polliesmod.New(deps)
	reg.RegisterModule(pollies)
	lookup, _ := module.PortsAs[polliesdomain.Lookup](reg, pollies.Name())

	mods := []module.Module{
		metamod.New(deps, modkit.WithRegister(func(r httpkit.Router) {
			httpkit.Get(r, "/modules", func(*http.Request) (any, error) {
				names := reg.Names()
				sort.Strings(names)
				return names, nil
			})
		})),
		pollies,
		gigsmod.New(deps),
		draftsmod.New(deps,
			modkit.WithPorts(draftsmod.Ports{People: lookup}),
			modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
		),
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{CORSOrigins: opt.CORSOrigins, SlowRequest: opt.SlowRequest})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			reg.RegisterModule(m)
			m.MountRoutes(api)
		}
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	deps.Logger("api").Debug().Strs("modules", reg.Names()).Msg("api mounted")
	return reg
}
