package httpkit

import (
	"net/http"
	"strings"

	perrs "panelgrid/internal/platform/errors"
	pnet "panelgrid/internal/platform/net"
)

// Supplier returns the authenticated supplier id from the request context
func Supplier(r *http.Request) (string, error) {
	sid := pnet.SupplierID(r.Context())
	if sid == "" {
		return "", perrs.Unauthorizedf("missing supplier scope")
	}
	return sid, nil
}

// MustSupplier panics when no supplier is on context. Only call it on
// routes behind the auth middleware.
func MustSupplier(r *http.Request) string {
	sid, err := Supplier(r)
	if err != nil {
		panic(err)
	}
	return sid
}

// JWT extracts the raw bearer token from the Authorization header. The
// scheme match is case-insensitive; the token itself is untouched.
func JWT(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(authz) < len(prefix) || !strings.EqualFold(authz[:len(prefix)], prefix) {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}
