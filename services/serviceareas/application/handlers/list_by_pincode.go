package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	appsvcs "github.com/naatukodi/catering/services/serviceareas/application/services"
)

const defaultAreaPageSize = 50

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"service area not found"`
} // @name ServiceAreasErrorResponse

// ListByPincodeHandler handles GET /serviceareas/{pincode} requests.
type ListByPincodeHandler struct {
	svc *appsvcs.Services
}

// NewListByPincodeHandler returns a ListByPincodeHandler backed by the given services.
func NewListByPincodeHandler(svc *appsvcs.Services) *ListByPincodeHandler {
	return &ListByPincodeHandler{svc: svc}
}

// Execute lists one page of caterers covering a pincode.
//
//	@Summary		List caterers for a pincode
//	@Description	Returns one page of coverage mappings, highest rank first
//	@Tags			serviceareas
//	@Produce		json
//	@Param			pincode				path	string	true	"Pincode"
//	@Param			pageSize			query	int		false	"Page size (default 50)"
//	@Param			continuationToken	query	string	false	"Opaque continuation token from the previous page"
//	@Success		200	{object}	cosmos.Page[models.ServiceArea]
//	@Router			/serviceareas/{pincode} [get]
func (h *ListByPincodeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	pincode := chi.URLParam(r, "pincode")
	pageSize, continuation := httpx.PageParams(r, defaultAreaPageSize)

	page, err := h.svc.ServiceAreas.ListByPincode(r.Context(), pincode, cosmos.ListOptions{
		PageSize:     pageSize,
		Continuation: continuation,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, page)
}
