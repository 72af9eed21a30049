package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	appsvcs "github.com/naatukodi/catering/services/orders/application/services"
)

const defaultCustomerPageSize = 20

// ListByCustomerHandler handles GET /orders/by-customer/{userId} requests.
type ListByCustomerHandler struct {
	svc *appsvcs.Services
}

// NewListByCustomerHandler returns a ListByCustomerHandler backed by the given services.
func NewListByCustomerHandler(svc *appsvcs.Services) *ListByCustomerHandler {
	return &ListByCustomerHandler{svc: svc}
}

// Execute lists one page of a customer's orders.
//
//	@Summary		List orders by customer
//	@Description	Returns one page of the customer's orders, newest first
//	@Tags			orders
//	@Produce		json
//	@Param			userId				path	string	true	"Customer user id"
//	@Param			pageSize			query	int		false	"Page size (default 20)"
//	@Param			continuationToken	query	string	false	"Opaque continuation token from the previous page"
//	@Success		200	{object}	cosmos.Page[models.Order]
//	@Router			/orders/by-customer/{userId} [get]
func (h *ListByCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	pageSize, continuation := httpx.PageParams(r, defaultCustomerPageSize)

	page, err := h.svc.Orders.ListByCustomer(r.Context(), userID, cosmos.ListOptions{
		PageSize:     pageSize,
		Continuation: continuation,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, page)
}
