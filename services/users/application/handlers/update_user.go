package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/errhttp"
	pkgvalidator "github.com/naatukodi/catering/pkg/validator"
	appsvcs "github.com/naatukodi/catering/services/users/application/services"
)

// UpdateUserRequest is the request body for PUT /users/{userId}. Only
// non-empty fields are applied to the stored profile.
type UpdateUserRequest struct {
	Name   string `json:"name" validate:"omitempty,max=255"`
	Phone  string `json:"phone" validate:"omitempty,max=20"`
	Status string `json:"status" validate:"omitempty,oneof=Active Blocked"`
} // @name UpdateUserRequest

// UpdateUserHandler handles PUT /users/{userId} requests.
type UpdateUserHandler struct {
	svc *appsvcs.Services
}

// NewUpdateUserHandler returns an UpdateUserHandler backed by the given services.
func NewUpdateUserHandler(svc *appsvcs.Services) *UpdateUserHandler {
	return &UpdateUserHandler{svc: svc}
}

// Execute merges the provided fields into the user profile.
//
//	@Summary		Update user profile
//	@Description	Applies the non-empty request fields to the stored profile and upserts the result
//	@Tags			users
//	@Accept			json
//	@Param			userId	path	string				true	"User id"
//	@Param			request	body	UpdateUserRequest	true	"Profile changes"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/users/{userId} [put]
func (h *UpdateUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	req, ok := pkgvalidator.ValidateRequest[UpdateUserRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Users.UpdateProfile(r.Context(), userID, req.Name, req.Phone, req.Status); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
