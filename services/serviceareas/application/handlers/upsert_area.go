package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/errhttp"
	pkgvalidator "github.com/naatukodi/catering/pkg/validator"
	appsvcs "github.com/naatukodi/catering/services/serviceareas/application/services"
	"github.com/naatukodi/catering/services/serviceareas/domain/models"
)

// UpsertServiceAreaRequest is the request body for POST /serviceareas/{pincode}.
type UpsertServiceAreaRequest struct {
	CatererID string   `json:"catererId" validate:"required"`
	Regions   []string `json:"regions"`
	Rank      int      `json:"rank" validate:"gte=0"`
} // @name UpsertServiceAreaRequest

// UpsertAreaHandler handles POST /serviceareas/{pincode} requests.
type UpsertAreaHandler struct {
	svc *appsvcs.Services
}

// NewUpsertAreaHandler returns an UpsertAreaHandler backed by the given services.
func NewUpsertAreaHandler(svc *appsvcs.Services) *UpsertAreaHandler {
	return &UpsertAreaHandler{svc: svc}
}

// Execute inserts or replaces one pincode→caterer coverage mapping.
//
//	@Summary		Upsert service area
//	@Description	Inserts or replaces the coverage mapping for the pincode/caterer pair
//	@Tags			serviceareas
//	@Accept			json
//	@Param			pincode	path	string						true	"Pincode"
//	@Param			request	body	UpsertServiceAreaRequest	true	"Coverage mapping"
//	@Success		204
//	@Failure		422	{object}	ErrorResponse
//	@Router			/serviceareas/{pincode} [post]
func (h *UpsertAreaHandler) Execute(w http.ResponseWriter, r *http.Request) {
	pincode := chi.URLParam(r, "pincode")

	req, ok := pkgvalidator.ValidateRequest[UpsertServiceAreaRequest](w, r)
	if !ok {
		return
	}

	area := &models.ServiceArea{
		Pincode:   pincode,
		CatererID: req.CatererID,
		Regions:   req.Regions,
		Rank:      req.Rank,
	}

	if err := h.svc.ServiceAreas.Upsert(r.Context(), area); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
