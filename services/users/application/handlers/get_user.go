package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	appsvcs "github.com/naatukodi/catering/services/users/application/services"
)

// GetUserHandler handles GET /users/{userId} requests.
type GetUserHandler struct {
	svc *appsvcs.Services
}

// NewGetUserHandler returns a GetUserHandler backed by the given services.
func NewGetUserHandler(svc *appsvcs.Services) *GetUserHandler {
	return &GetUserHandler{svc: svc}
}

// Execute returns one user.
//
//	@Summary		Get user
//	@Description	Returns the user document for the given id
//	@Tags			users
//	@Produce		json
//	@Param			userId	path		string	true	"User id"
//	@Success		200		{object}	models.User
//	@Failure		404		{object}	ErrorResponse
//	@Router			/users/{userId} [get]
func (h *GetUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	user, err := h.svc.Users.Get(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, user)
}
