package httpkit

import "panelgrid/internal/platform/net/middleware"

// Protected groups routes behind bearer auth, so every handler inside
// can rely on the supplier id being on context.
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(gr)
	})
}
