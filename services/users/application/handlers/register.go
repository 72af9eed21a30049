package handlers

import (
	"net/http"

	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	pkgvalidator "github.com/naatukodi/catering/pkg/validator"
	appsvcs "github.com/naatukodi/catering/services/users/application/services"
	"github.com/naatukodi/catering/services/users/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"email already registered"`
} // @name UsersErrorResponse

// RegisterUserRequest is the request body for POST /users.
// Role defaults to Customer when omitted.
type RegisterUserRequest struct {
	Role      string `json:"role" validate:"omitempty,oneof=Customer Caterer Admin" example:"Customer"`
	CatererID string `json:"catererId"`
	Name      string `json:"name" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=20"`
} // @name RegisterUserRequest

// RegisterUserResponse is returned on successful registration.
type RegisterUserResponse struct {
	UserID string `json:"userId" example:"USR_4f2c1a0b9d8e47f6a5b3c2d1e0f9a8b7"`
} // @name RegisterUserResponse

// RegisterHandler handles POST /users requests.
type RegisterHandler struct {
	svc *appsvcs.Services
}

// NewRegisterHandler returns a RegisterHandler backed by the given services.
func NewRegisterHandler(svc *appsvcs.Services) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

// Execute registers a new user.
//
//	@Summary		Register user
//	@Description	Creates a new user with a generated USR_ id; 409 when the email or phone is already registered
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterUserRequest	true	"Registration"
//	@Success		201		{object}	RegisterUserResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/users [post]
func (h *RegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterUserRequest](w, r)
	if !ok {
		return
	}

	if req.Role == "" {
		req.Role = models.RoleCustomer
	}

	user := &models.User{
		Role:      req.Role,
		CatererID: req.CatererID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	created, err := h.svc.Users.Register(r.Context(), user)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, RegisterUserResponse{UserID: created.UserID})
}
