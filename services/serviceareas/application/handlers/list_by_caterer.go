package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	appsvcs "github.com/naatukodi/catering/services/serviceareas/application/services"
)

const defaultPincodePageSize = 100

// ListByCatererHandler handles GET /serviceareas/by-caterer/{catererId} requests.
type ListByCatererHandler struct {
	svc *appsvcs.Services
}

// NewListByCatererHandler returns a ListByCatererHandler backed by the given services.
func NewListByCatererHandler(svc *appsvcs.Services) *ListByCatererHandler {
	return &ListByCatererHandler{svc: svc}
}

// Execute lists one page of pincodes the caterer serves.
//
//	@Summary		List pincodes for a caterer
//	@Description	Returns one page of pincodes the caterer covers, in lexicographic order
//	@Tags			serviceareas
//	@Produce		json
//	@Param			catererId			path	string	true	"Caterer id"
//	@Param			pageSize			query	int		false	"Page size (default 100)"
//	@Param			continuationToken	query	string	false	"Opaque continuation token from the previous page"
//	@Success		200	{object}	cosmos.Page[string]
//	@Router			/serviceareas/by-caterer/{catererId} [get]
func (h *ListByCatererHandler) Execute(w http.ResponseWriter, r *http.Request) {
	catererID := chi.URLParam(r, "catererId")
	pageSize, continuation := httpx.PageParams(r, defaultPincodePageSize)

	page, err := h.svc.ServiceAreas.ListPincodesForCaterer(r.Context(), catererID, cosmos.ListOptions{
		PageSize:     pageSize,
		Continuation: continuation,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, page)
}
