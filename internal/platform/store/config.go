package store

import "time"

// Config aggregates the per-backend settings
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig covers postgres connectivity, tracing, and boot guards
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // ping attempts before Open gives up, default 20
	PingTimeout    time.Duration // per-attempt bound, default 3s
}
