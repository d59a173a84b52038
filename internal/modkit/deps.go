// Package modkit wires modules: shared deps, build options, and the
// module surface the API composer mounts.
package modkit

import (
	"panelgrid/internal/modkit/repokit"
	"panelgrid/internal/platform/config"
	"panelgrid/internal/platform/logger"
)

// Deps is the dependency bundle handed to every module constructor
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}
