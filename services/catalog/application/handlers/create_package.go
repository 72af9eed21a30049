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

// PackageItemRequest is one menu item reference inside a package request.
type PackageItemRequest struct {
	MenuItemID  string  `json:"menuItemId" validate:"required"`
	QtyPerPlate float64 `json:"qtyPerPlate" validate:"gt=0"`
} // @name PackageItemRequest

// CreatePackageRequest is the request body for POST /catalog/{catererId}/packages.
// IsActive is a pointer so an omitted field defaults to active rather than
// silently storing an inactive package.
type CreatePackageRequest struct {
	Name          string               `json:"name" validate:"required,min=1,max=255" example:"Wedding Silver"`
	Description   string               `json:"description" validate:"max=2000"`
	PerPlatePrice float64              `json:"perPlatePrice" validate:"gte=0" example:"450"`
	VegOnly       bool                 `json:"vegOnly"`
	Items         []PackageItemRequest `json:"items" validate:"required,min=1,dive"`
	IsActive      *bool                `json:"isActive"`
} // @name CreatePackageRequest

// CreatePackageHandler handles POST /catalog/{catererId}/packages requests.
type CreatePackageHandler struct {
	svc *appsvcs.Services
}

// NewCreatePackageHandler returns a CreatePackageHandler backed by the given services.
func NewCreatePackageHandler(svc *appsvcs.Services) *CreatePackageHandler {
	return &CreatePackageHandler{svc: svc}
}

// Execute creates a new package for the caterer.
//
//	@Summary		Create package
//	@Description	Creates a new package with a generated PKG_ id
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			catererId	path		string					true	"Caterer id"
//	@Param			request		body		CreatePackageRequest	true	"Package"
//	@Success		201			{object}	CreatedResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/catalog/{catererId}/packages [post]
func (h *CreatePackageHandler) Execute(w http.ResponseWriter, r *http.Request) {
	catererID := chi.URLParam(r, "catererId")

	req, ok := pkgvalidator.ValidateRequest[CreatePackageRequest](w, r)
	if !ok {
		return
	}

	items := make([]models.PackageItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = models.PackageItem{MenuItemID: it.MenuItemID, QtyPerPlate: it.QtyPerPlate}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	pkg := &models.Package{
		Name:          req.Name,
		Description:   req.Description,
		PerPlatePrice: req.PerPlatePrice,
		VegOnly:       req.VegOnly,
		Items:         items,
		IsActive:      isActive,
	}

	created, err := h.svc.Catalog.CreatePackage(r.Context(), catererID, pkg)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreatedResponse{ID: created.ID})
}
