// Package module wires API-key administration into HTTP via modkit
package module

import (
	"net/http"

	"panelgrid/internal/modkit"
	"panelgrid/internal/modkit/httpkit"
	"panelgrid/internal/modkit/repokit"
	"panelgrid/internal/platform/strings"

	"panelgrid/internal/services/ident/domain"
	identhttp "panelgrid/internal/services/ident/http"
	"panelgrid/internal/services/ident/repo"
	"panelgrid/internal/services/ident/service"
)

// Ports exposes the identity ports for cross-module lookups
type Ports struct {
	Verifier domain.VerifierPort
	Issuer   domain.IssuerPort
}

// Module implements the ident module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *service.Service
}

// New constructs the ident module. Its routes sit behind the operator
// admin token rather than supplier auth
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("ident"), modkit.WithPrefix("/ident")}, opts...)...)

	o := FromConfig(deps.Cfg)
	svc := service.New(repokit.TxRunner(deps.PG), repo.NewPG())

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       append([]func(http.Handler) http.Handler{httpkit.AdminGuard(o.AdminToken)}, b.Mw...),
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Verifier: svc, Issuer: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		identhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name is the module name
func (m *Module) Name() string { return strings.MustString(m.name, "module name") }

// Prefix is the module route prefix
func (m *Module) Prefix() string { return strings.MustPrefix(m.prefix) }

// Middlewares is the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
