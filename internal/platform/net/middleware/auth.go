package middleware

import (
	"net/http"

	"panelgrid/internal/platform/logger"
	pnet "panelgrid/internal/platform/net"
)

// AuthPort is the seam the supplier identity layer implements
type AuthPort interface {
	// Parse returns the calling supplier's id or an error
	Parse(r *http.Request) (supplierID string, err error)
}

// Auth resolves the calling supplier, stores it on the request context,
// and seeds the context logger with the correlation fields. A nil port
// leaves the request untouched so unguarded routers can share the stack.
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			sid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithSupplier(r.Context(), sid)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
