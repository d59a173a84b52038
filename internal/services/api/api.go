// Package api composes the HTTP API from its modules.
package api

import (
	"panelgrid/internal/platform/config"
	"panelgrid/internal/platform/logger"
	phttp "panelgrid/internal/platform/net/http"
	"panelgrid/internal/platform/store"

	"panelgrid/internal/modkit"
	"panelgrid/internal/modkit/httpkit"
	"panelgrid/internal/modkit/module"
	"panelgrid/internal/modkit/swaggerkit"

	metamod "panelgrid/internal/services/api/meta/module"
	questionsmod "panelgrid/internal/services/api/questions/module"
	supplymod "panelgrid/internal/services/api/supply/module"

	identmod "panelgrid/internal/services/ident/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount assembles the module set and mounts it on the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// supplier auth guards every catalog route; the ident module both
	// verifies those tokens and mints them behind the admin guard
	ident := identmod.New(deps)
	verifier := ident.Ports().(identmod.Ports).Verifier
	auth := httpkit.Auth(httpkit.NewPortFunc(verifier.SupplierForToken))

	mods := []module.Module{
		metamod.New(deps),
		supplymod.New(deps, modkit.WithMiddlewares(auth)),
		questionsmod.New(deps, modkit.WithMiddlewares(auth)),
		ident,
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// registered ports stay available for cross-module lookups
			module.Register(m.Name(), m.Ports())

			m.MountRoutes(api)
		}
	})
}
