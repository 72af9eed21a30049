package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/errhttp"
	pkgvalidator "github.com/naatukodi/catering/pkg/validator"
	appsvcs "github.com/naatukodi/catering/services/catalog/application/services"
	"github.com/naatukodi/catering/services/catalog/domain/models"
)

// UpsertCatererRequest is the request body for POST /catalog/{catererId}.
type UpsertCatererRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255" example:"Annapurna Caterers"`
	LogoURL      string `json:"logoUrl" validate:"omitempty,url"`
	ContactPhone string `json:"contactPhone" validate:"omitempty,max=20"`
	Gstin        string `json:"gstin" validate:"omitempty,max=15"`
	IsVerified   bool   `json:"isVerified"`
} // @name UpsertCatererRequest

// UpsertCatererHandler handles POST /catalog/{catererId} requests.
type UpsertCatererHandler struct {
	svc *appsvcs.Services
}

// NewUpsertCatererHandler returns an UpsertCatererHandler backed by the given services.
func NewUpsertCatererHandler(svc *appsvcs.Services) *UpsertCatererHandler {
	return &UpsertCatererHandler{svc: svc}
}

// Execute inserts or replaces a caterer profile.
//
//	@Summary		Upsert caterer profile
//	@Description	Inserts or fully replaces the caterer profile for the given id
//	@Tags			catalog
//	@Accept			json
//	@Param			catererId	path	string					true	"Caterer id"
//	@Param			request		body	UpsertCatererRequest	true	"Caterer profile"
//	@Success		204
//	@Failure		422	{object}	ErrorResponse
//	@Router			/catalog/{catererId} [post]
func (h *UpsertCatererHandler) Execute(w http.ResponseWriter, r *http.Request) {
	catererID := chi.URLParam(r, "catererId")

	req, ok := pkgvalidator.ValidateRequest[UpsertCatererRequest](w, r)
	if !ok {
		return
	}

	caterer := &models.Caterer{
		ID:           catererID,
		CatererID:    catererID,
		Name:         req.Name,
		LogoURL:      req.LogoURL,
		ContactPhone: req.ContactPhone,
		Gstin:        req.Gstin,
		IsVerified:   req.IsVerified,
	}

	if err := h.svc.Catalog.UpsertCaterer(r.Context(), caterer); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
