package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	pkgvalidator "github.com/naatukodi/catering/pkg/validator"
	appsvcs "github.com/naatukodi/catering/services/catalog/application/services"
	"github.com/naatukodi/catering/services/catalog/domain/models"
)

// CreateMenuItemRequest is the request body for POST /catalog/{catererId}/menuitems.
// VegType, Category, and Unit default to Veg, Main, and plate when omitted.
type CreateMenuItemRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=255" example:"Paneer Tikka"`
	VegType  string   `json:"vegType" validate:"omitempty,oneof=Veg NonVeg Egg" example:"Veg"`
	Category string   `json:"category" validate:"omitempty,oneof=Starter Main Dessert Beverage LiveCounter" example:"Starter"`
	Unit     string   `json:"unit" validate:"omitempty,max=32" example:"plate"`
	BaseCost float64  `json:"baseCost" validate:"gte=0" example:"120"`
	Tags     []string `json:"tags"`
} // @name CreateMenuItemRequest

// CreatedResponse is returned when a catalog document is created.
type CreatedResponse struct {
	ID string `json:"id" example:"MI_4f2c1a0b9d8e47f6a5b3c2d1e0f9a8b7"`
} // @name CreatedResponse

// CreateMenuItemHandler handles POST /catalog/{catererId}/menuitems requests.
type CreateMenuItemHandler struct {
	svc *appsvcs.Services
}

// NewCreateMenuItemHandler returns a CreateMenuItemHandler backed by the given services.
func NewCreateMenuItemHandler(svc *appsvcs.Services) *CreateMenuItemHandler {
	return &CreateMenuItemHandler{svc: svc}
}

// Execute creates a new menu item for the caterer.
//
//	@Summary		Create menu item
//	@Description	Creates a new menu item with a generated MI_ id
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			catererId	path		string					true	"Caterer id"
//	@Param			request		body		CreateMenuItemRequest	true	"Menu item"
//	@Success		201			{object}	CreatedResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/catalog/{catererId}/menuitems [post]
func (h *CreateMenuItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	catererID := chi.URLParam(r, "catererId")

	req, ok := pkgvalidator.ValidateRequest[CreateMenuItemRequest](w, r)
	if !ok {
		return
	}

	if req.VegType == "" {
		req.VegType = models.VegTypeVeg
	}
	if req.Category == "" {
		req.Category = models.CategoryMain
	}
	if req.Unit == "" {
		req.Unit = "plate"
	}

	item := &models.MenuItem{
		Name:     req.Name,
		VegType:  req.VegType,
		Category: req.Category,
		Unit:     req.Unit,
		BaseCost: req.BaseCost,
		Tags:     req.Tags,
		IsActive: true,
	}

	created, err := h.svc.Catalog.CreateMenuItem(r.Context(), catererID, item)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreatedResponse{ID: created.ID})
}
