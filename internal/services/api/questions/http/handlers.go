// Package http provides HTTP transport for the questions API
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"panelgrid/internal/modkit/httpkit"

	svc "panelgrid/internal/services/api/questions/service"
)

// Register mounts question bank endpoints on the given router.
// {key}/answers is registered before {country} so the more specific
// route wins in chi's tree
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/{key}/answers", h.answers)
	httpkit.Get(r, "/{country}", h.listByCountry)
}

type handlers struct{ svc *svc.Service }

// @Summary Screening questions available to a country's panel
// @Tags Questions
// @Produce json
// @Param country path string true "ISO country code"
// @Success 200 {array} targeting.Question "ok"
// @Router /questions/{country} [get]
func (h *handlers) listByCountry(r *stdhttp.Request) (any, error) {
	return h.svc.ListByCountry(r.Context(), chi.URLParam(r, "country"))
}

// @Summary Published options for one question key
// @Tags Questions
// @Produce json
// @Param key path string true "question key"
// @Success 200 {array} targeting.Option "ok"
// @Router /questions/{key}/answers [get]
func (h *handlers) answers(r *stdhttp.Request) (any, error) {
	return h.svc.Answers(r.Context(), chi.URLParam(r, "key"))
}
