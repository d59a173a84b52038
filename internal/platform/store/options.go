package store

import "panelgrid/internal/platform/logger"

// Option customizes a Store while Open runs
type Option func(*Store) error

// WithLogger routes backend logging, the SQL tracer included, to log
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}
