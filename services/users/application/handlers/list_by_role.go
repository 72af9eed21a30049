package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	appsvcs "github.com/naatukodi/catering/services/users/application/services"
)

const defaultUsersPageSize = 50

// ListByRoleHandler handles GET /users/by-role/{role} requests.
type ListByRoleHandler struct {
	svc *appsvcs.Services
}

// NewListByRoleHandler returns a ListByRoleHandler backed by the given services.
func NewListByRoleHandler(svc *appsvcs.Services) *ListByRoleHandler {
	return &ListByRoleHandler{svc: svc}
}

// Execute lists one page of users with the given role.
//
//	@Summary		List users by role
//	@Description	Returns one page of users with the role, newest first
//	@Tags			users
//	@Produce		json
//	@Param			role				path	string	true	"Role (Customer, Caterer, Admin)"
//	@Param			pageSize			query	int		false	"Page size (default 50)"
//	@Param			continuationToken	query	string	false	"Opaque continuation token from the previous page"
//	@Success		200	{object}	cosmos.Page[models.User]
//	@Router			/users/by-role/{role} [get]
func (h *ListByRoleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")
	pageSize, continuation := httpx.PageParams(r, defaultUsersPageSize)

	page, err := h.svc.Users.ListByRole(r.Context(), role, cosmos.ListOptions{
		PageSize:     pageSize,
		Continuation: continuation,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, page)
}
