// Package config reads application settings from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"panelgrid/internal/platform/logger"
)

// Conf is a prefixed view over the environment. The root binary builds
// one per namespace, e.g. Prefix("PANELGRID_") or Prefix("SUPPLY_"),
// and hands it down to module options.
type Conf struct{ prefix string }

// New returns the unprefixed root view
func New() Conf { return Conf{} }

// Prefix narrows the view by appending p to the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) raw(key string) (string, string) {
	k := c.prefix + key
	return k, strings.TrimSpace(os.Getenv(k))
}

// MustString panics when the key is missing or blank
func (c Conf) MustString(key string) string {
	k, v := c.raw(key)
	if v == "" {
		logger.Get().Panic().Str("key", k).Msg("missing required env")
	}
	return v
}

// MayString falls back to def when the key is missing or blank
func (c Conf) MayString(key, def string) string {
	if _, v := c.raw(key); v != "" {
		return v
	}
	return def
}

// MayInt falls back to def when missing; a malformed value is logged
// and also falls back rather than killing startup
func (c Conf) MayInt(key string, def int) int {
	k, s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Warn().Str("key", k).Str("value", s).Int("default", def).Msg("invalid int; using default")
		return def
	}
	return v
}

// MayBool falls back to def when missing or malformed
func (c Conf) MayBool(key string, def bool) bool {
	k, s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logger.Get().Warn().Str("key", k).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
		return def
	}
	return v
}

// MayDuration falls back to def when missing or malformed. Values use
// Go duration syntax such as 250ms, 2s, 1h.
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	k, s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Warn().Str("key", k).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
		return def
	}
	return v
}
