// Package http provides HTTP transport for the supply API
package http

import (
	stdhttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"panelgrid/internal/modkit/httpkit"
	perr "panelgrid/internal/platform/errors"
	ptime "panelgrid/internal/platform/time"

	"panelgrid/internal/services/api/supply/domain"
	svc "panelgrid/internal/services/api/supply/service"
)

// Register mounts supply endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/surveys", h.listSurveys)
	httpkit.Get(r, "/surveys/changed/{datetime}", h.listChanged)
}

type handlers struct{ svc *svc.Service }

// @Summary Live survey catalog for the authenticated supplier
// @Tags Supply
// @Produce json
// @Success 200 {array} domain.ResolvedGroup "ok"
// @Failure 404 {object} httpkit.Envelope "no surveys available"
// @Router /supply/surveys [get]
func (h *handlers) listSurveys(r *stdhttp.Request) (any, error) {
	sid, err := httpkit.Supplier(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ListLive(r.Context(), domain.ListInput{SupplierID: sid})
}

// @Summary Surveys modified at or after the given datetime
// @Tags Supply
// @Produce json
// @Param datetime path string true "RFC3339, or 'YYYY-MM-DD HH:MM:SS' in Pacific time"
// @Success 200 {array} domain.ResolvedGroup "ok"
// @Failure 404 {object} httpkit.Envelope "no surveys available"
// @Router /supply/surveys/changed/{datetime} [get]
func (h *handlers) listChanged(r *stdhttp.Request) (any, error) {
	sid, err := httpkit.Supplier(r)
	if err != nil {
		return nil, err
	}
	since, err := parseChangedSince(chi.URLParam(r, "datetime"))
	if err != nil {
		return nil, err
	}
	return h.svc.ListLive(r.Context(), domain.ListInput{SupplierID: sid, ChangedSince: &since})
}

// parseChangedSince accepts RFC3339 directly; the legacy bare form
// "2006-01-02 15:04:05" is read as Pacific civil time and converted
func parseChangedSince(raw string) (time.Time, error) {
	v, err := url.PathUnescape(raw)
	if err != nil {
		v = raw
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, perr.Newf(perr.ErrorCodeInvalidArgument, "datetime required")
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04:05", v, ptime.Pacific())
	if err != nil {
		return time.Time{}, perr.Newf(perr.ErrorCodeInvalidArgument, "bad datetime %q", v)
	}
	return t.UTC(), nil
}
