package httpkit

import (
	"context"
	"net/http"

	perrs "panelgrid/internal/platform/errors"
)

// TokenFunc resolves a bearer token to the calling supplier's id
type TokenFunc func(ctx context.Context, token string) (supplierID string, err error)

// Port implements middleware.AuthPort: it extracts the bearer token and
// delegates resolution to a TokenFunc.
type Port struct {
	resolve TokenFunc
}

// NewPortFunc builds a Port from a resolver function
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{resolve: fn}
}

// Parse returns the supplier id for the request's bearer token. Missing
// or malformed headers and resolver failures all surface as unauthorized.
func (p *Port) Parse(r *http.Request) (string, error) {
	token, err := JWT(r)
	if err != nil {
		return "", err
	}
	if p.resolve == nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	return p.resolve(r.Context(), token)
}
