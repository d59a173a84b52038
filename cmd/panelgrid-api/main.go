// @title         Panelgrid API
// @version       0.1.0
// @description   Supplier-facing survey catalog endpoints

package main

import (
	"context"

	"panelgrid/internal/modkit/repokit"
	"panelgrid/internal/platform/config"
	"panelgrid/internal/platform/logger"
	phttp "panelgrid/internal/platform/net/http"
	"panelgrid/internal/platform/store"

	"panelgrid/internal/services/api"
)

func main() {
	// service-scoped config for HTTP and modules (PANELGRID_*)
	root := config.New()
	apiCfg := root.Prefix("PANELGRID_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")

	// bring up logging early
	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "panelgrid-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast when postgres is unreachable
	repokit.MustGuard(context.Background(), st)

	// http server (reads PANELGRID_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
