// Package module holds the module contract and the bootstrap registry.
// It is a sibling of modkit so a module can export its own ports type
// without an import knot.
package module

import (
	phttp "panelgrid/internal/platform/net/http"
)

// Module mirrors the modkit module surface
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
