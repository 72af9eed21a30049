package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	appsvcs "github.com/naatukodi/catering/services/catalog/application/services"
	"github.com/naatukodi/catering/services/catalog/domain/repositories"
)

const defaultCatalogPageSize = 50

// ListMenuItemsHandler handles GET /catalog/{catererId}/menuitems requests.
type ListMenuItemsHandler struct {
	svc *appsvcs.Services
}

// NewListMenuItemsHandler returns a ListMenuItemsHandler backed by the given services.
func NewListMenuItemsHandler(svc *appsvcs.Services) *ListMenuItemsHandler {
	return &ListMenuItemsHandler{svc: svc}
}

// Execute lists one page of a caterer's menu items.
//
//	@Summary		List menu items
//	@Description	Returns one page of the caterer's menu items, newest first
//	@Tags			catalog
//	@Produce		json
//	@Param			catererId			path	string	true	"Caterer id"
//	@Param			category			query	string	false	"Filter by category"
//	@Param			vegType				query	string	false	"Filter by veg type"
//	@Param			onlyActive			query	bool	false	"Only active items"
//	@Param			pageSize			query	int		false	"Page size (default 50)"
//	@Param			continuationToken	query	string	false	"Opaque continuation token from the previous page"
//	@Success		200	{object}	cosmos.Page[models.MenuItem]
//	@Router			/catalog/{catererId}/menuitems [get]
func (h *ListMenuItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	catererID := chi.URLParam(r, "catererId")
	pageSize, continuation := httpx.PageParams(r, defaultCatalogPageSize)

	filter := repositories.MenuItemFilter{
		Category:   r.URL.Query().Get("category"),
		VegType:    r.URL.Query().Get("vegType"),
		OnlyActive: r.URL.Query().Get("onlyActive") == "true",
	}

	page, err := h.svc.Catalog.ListMenuItems(r.Context(), catererID, filter, cosmos.ListOptions{
		PageSize:     pageSize,
		Continuation: continuation,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, page)
}
