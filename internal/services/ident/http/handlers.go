// Package http provides HTTP transport for API-key administration
package http

import (
	stdhttp "net/http"

	"panelgrid/internal/modkit/httpkit"

	svc "panelgrid/internal/services/ident/service"
)

// Register mounts key administration endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON(r, "/keys", h.issueKey)
}

type handlers struct{ svc *svc.Service }

type issueKeyRequest struct {
	SupplierID string `json:"supplier_id" validate:"required"`
}

type issueKeyResponse struct {
	SupplierID string `json:"supplier_id"`
	APIKey     string `json:"api_key"`
}

// @Summary Mint an API key for a supplier
// @Tags Ident
// @Accept json
// @Produce json
// @Param request body issueKeyRequest true "target supplier"
// @Success 200 {object} issueKeyResponse "ok"
// @Router /ident/keys [post]
func (h *handlers) issueKey(r *stdhttp.Request, in issueKeyRequest) (any, error) {
	token, err := h.svc.IssueKey(r.Context(), in.SupplierID)
	if err != nil {
		return nil, err
	}
	// the raw token appears in this response and nowhere else
	return issueKeyResponse{SupplierID: in.SupplierID, APIKey: token}, nil
}
