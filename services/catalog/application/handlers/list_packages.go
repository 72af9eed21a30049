package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	appsvcs "github.com/naatukodi/catering/services/catalog/application/services"
)

// ListPackagesHandler handles GET /catalog/{catererId}/packages requests.
type ListPackagesHandler struct {
	svc *appsvcs.Services
}

// NewListPackagesHandler returns a ListPackagesHandler backed by the given services.
func NewListPackagesHandler(svc *appsvcs.Services) *ListPackagesHandler {
	return &ListPackagesHandler{svc: svc}
}

// Execute lists one page of a caterer's packages.
//
//	@Summary		List packages
//	@Description	Returns one page of the caterer's packages, newest first
//	@Tags			catalog
//	@Produce		json
//	@Param			catererId			path	string	true	"Caterer id"
//	@Param			onlyActive			query	bool	false	"Only active packages"
//	@Param			pageSize			query	int		false	"Page size (default 50)"
//	@Param			continuationToken	query	string	false	"Opaque continuation token from the previous page"
//	@Success		200	{object}	cosmos.Page[models.Package]
//	@Router			/catalog/{catererId}/packages [get]
func (h *ListPackagesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	catererID := chi.URLParam(r, "catererId")
	pageSize, continuation := httpx.PageParams(r, defaultCatalogPageSize)
	onlyActive := r.URL.Query().Get("onlyActive") == "true"

	page, err := h.svc.Catalog.ListPackages(r.Context(), catererID, onlyActive, cosmos.ListOptions{
		PageSize:     pageSize,
		Continuation: continuation,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, page)
}
