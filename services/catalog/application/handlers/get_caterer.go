package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	appsvcs "github.com/naatukodi/catering/services/catalog/application/services"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"caterer not found"`
} // @name ErrorResponse

// GetCatererHandler handles GET /catalog/{catererId} requests.
type GetCatererHandler struct {
	svc *appsvcs.Services
}

// NewGetCatererHandler returns a GetCatererHandler backed by the given services.
func NewGetCatererHandler(svc *appsvcs.Services) *GetCatererHandler {
	return &GetCatererHandler{svc: svc}
}

// Execute returns one caterer profile.
//
//	@Summary		Get caterer profile
//	@Description	Returns the caterer profile document for the given id
//	@Tags			catalog
//	@Produce		json
//	@Param			catererId	path		string	true	"Caterer id"
//	@Success		200			{object}	models.Caterer
//	@Failure		404			{object}	ErrorResponse
//	@Router			/catalog/{catererId} [get]
func (h *GetCatererHandler) Execute(w http.ResponseWriter, r *http.Request) {
	catererID := chi.URLParam(r, "catererId")

	caterer, err := h.svc.Catalog.GetCaterer(r.Context(), catererID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, caterer)
}
