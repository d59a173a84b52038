package module

import (
	"panelgrid/internal/platform/config"
)

// Options holds configuration settings for the ident module
type Options struct {
	// AdminToken guards the key administration routes; empty disables them
	AdminToken string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	return Options{
		AdminToken: cfg.Prefix("IDENT_").MayString("ADMIN_TOKEN", ""),
	}
}
