package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/errhttp"
	appsvcs "github.com/naatukodi/catering/services/serviceareas/application/services"
)

// DeleteAreaHandler handles DELETE /serviceareas/{pincode}/{catererId} requests.
type DeleteAreaHandler struct {
	svc *appsvcs.Services
}

// NewDeleteAreaHandler returns a DeleteAreaHandler backed by the given services.
func NewDeleteAreaHandler(svc *appsvcs.Services) *DeleteAreaHandler {
	return &DeleteAreaHandler{svc: svc}
}

// Execute removes one coverage mapping.
//
//	@Summary		Delete service area
//	@Description	Removes exactly the mapping for the pincode/caterer pair
//	@Tags			serviceareas
//	@Param			pincode		path	string	true	"Pincode"
//	@Param			catererId	path	string	true	"Caterer id"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/serviceareas/{pincode}/{catererId} [delete]
func (h *DeleteAreaHandler) Execute(w http.ResponseWriter, r *http.Request) {
	pincode := chi.URLParam(r, "pincode")
	catererID := chi.URLParam(r, "catererId")

	if err := h.svc.ServiceAreas.Delete(r.Context(), pincode, catererID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
