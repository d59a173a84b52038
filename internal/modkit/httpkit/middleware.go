package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "panelgrid/internal/platform/net/http"
	"panelgrid/internal/platform/net/middleware"
)

// CommonStack is the baseline middleware every API scope mounts.
// Supplier auth composes on top per module.
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.Timeout(30 * time.Second),
	}
}

// Auth adapts the supplier auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}

// AdminGuard adapts the admin token middleware to the platform JSON writer
func AdminGuard(token string) func(http.Handler) http.Handler {
	return middleware.AdminToken(token, phttp.JSON)
}
