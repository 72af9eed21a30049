package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	appsvcs "github.com/naatukodi/catering/services/orders/application/services"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"order not found"`
} // @name OrdersErrorResponse

// GetOrderHandler handles GET /orders/{orderId} requests.
type GetOrderHandler struct {
	svc *appsvcs.Services
}

// NewGetOrderHandler returns a GetOrderHandler backed by the given services.
func NewGetOrderHandler(svc *appsvcs.Services) *GetOrderHandler {
	return &GetOrderHandler{svc: svc}
}

// Execute returns one order.
//
//	@Summary		Get order
//	@Description	Returns the full order document
//	@Tags			orders
//	@Produce		json
//	@Param			orderId	path		string	true	"Order id"
//	@Success		200		{object}	models.Order
//	@Failure		404		{object}	ErrorResponse
//	@Router			/orders/{orderId} [get]
func (h *GetOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := h.svc.Orders.Get(r.Context(), orderID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, order)
}
