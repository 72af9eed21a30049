package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/errhttp"
	pkgvalidator "github.com/naatukodi/catering/pkg/validator"
	appsvcs "github.com/naatukodi/catering/services/orders/application/services"
)

// UpdateStatusRequest is the request body for POST /orders/{orderId}/status.
// The status is a free-form string; no transition table is enforced.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=32" example:"Accepted"`
} // @name UpdateStatusRequest

// PostStatusHandler handles POST /orders/{orderId}/status requests.
type PostStatusHandler struct {
	svc *appsvcs.Services
}

// NewPostStatusHandler returns a PostStatusHandler backed by the given services.
func NewPostStatusHandler(svc *appsvcs.Services) *PostStatusHandler {
	return &PostStatusHandler{svc: svc}
}

// Execute patches the order's status.
//
//	@Summary		Update order status
//	@Description	Patches only the status and lastUpdatedAt fields of the order
//	@Tags			orders
//	@Accept			json
//	@Param			orderId	path	string				true	"Order id"
//	@Param			request	body	UpdateStatusRequest	true	"New status"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/orders/{orderId}/status [post]
func (h *PostStatusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	req, ok := pkgvalidator.ValidateRequest[UpdateStatusRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Orders.UpdateStatus(r.Context(), orderID, req.Status); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
