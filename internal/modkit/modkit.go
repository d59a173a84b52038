package modkit

import (
	phttp "panelgrid/internal/platform/net/http"
)

// Module is what the API composer needs from every module: a place to
// mount routes, a port set for cross-module wiring, and a name.
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
