package http

import "net/http"

// Handler is the stdlib-shaped handler the seam mounts
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the minimal routing surface modules mount against, keeping
// the concrete mux out of module code.
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Delete(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
