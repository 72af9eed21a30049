package handlers

import (
	"net/http"

	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	appsvcs "github.com/naatukodi/catering/services/users/application/services"
)

// GetByEmailHandler handles GET /users/by-email requests.
type GetByEmailHandler struct {
	svc *appsvcs.Services
}

// NewGetByEmailHandler returns a GetByEmailHandler backed by the given services.
func NewGetByEmailHandler(svc *appsvcs.Services) *GetByEmailHandler {
	return &GetByEmailHandler{svc: svc}
}

// Execute looks up a user by email, case-insensitively. The body is null
// when no user matches.
//
//	@Summary		Find user by email
//	@Description	Case-insensitive email lookup; returns null when no user matches
//	@Tags			users
//	@Produce		json
//	@Param			email	query		string	true	"Email"
//	@Success		200		{object}	models.User
//	@Router			/users/by-email [get]
func (h *GetByEmailHandler) Execute(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httpx.JSONError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	user, err := h.svc.Users.GetByEmail(r.Context(), email)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, user)
}

// GetByPhoneHandler handles GET /users/by-phone requests.
type GetByPhoneHandler struct {
	svc *appsvcs.Services
}

// NewGetByPhoneHandler returns a GetByPhoneHandler backed by the given services.
func NewGetByPhoneHandler(svc *appsvcs.Services) *GetByPhoneHandler {
	return &GetByPhoneHandler{svc: svc}
}

// Execute looks up a user by phone as stored. The body is null when no user
// matches.
//
//	@Summary		Find user by phone
//	@Description	Exact phone lookup; returns null when no user matches
//	@Tags			users
//	@Produce		json
//	@Param			phone	query		string	true	"Phone"
//	@Success		200		{object}	models.User
//	@Router			/users/by-phone [get]
func (h *GetByPhoneHandler) Execute(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		httpx.JSONError(w, http.StatusBadRequest, "phone query parameter is required")
		return
	}

	user, err := h.svc.Users.GetByPhone(r.Context(), phone)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, user)
}
