package middleware

import (
	"crypto/subtle"
	"net/http"

	perr "panelgrid/internal/platform/errors"
	pnet "panelgrid/internal/platform/net"
)

// AdminHeader carries the operator credential for administrative routes
const AdminHeader = "X-Admin-Token"

// AdminToken admits only requests presenting the configured credential.
// An empty configured token closes the surface outright, so deployments
// that never set one expose nothing.
func AdminToken(token string, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(AdminHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				status, body := pnet.Error(
					perr.Newf(perr.ErrorCodeForbidden, "admin access required"),
					pnet.RequestID(r.Context()),
				)
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
