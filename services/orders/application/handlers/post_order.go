package handlers

import (
	"net/http"
	"time"

	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	pkgvalidator "github.com/naatukodi/catering/pkg/validator"
	appsvcs "github.com/naatukodi/catering/services/orders/application/services"
	"github.com/naatukodi/catering/services/orders/domain/models"
)

// CreateOrderRequest is the request body for POST /orders.
type CreateOrderRequest struct {
	CatererID      string    `json:"catererId" validate:"required"`
	CustomerUserID string    `json:"customerUserId" validate:"required"`
	CustomerName   string    `json:"customerName" validate:"required,max=255"`
	CustomerPhone  string    `json:"customerPhone" validate:"required,max=20"`
	EventDateTime  time.Time `json:"eventDateTime" validate:"required"`
	GuestCount     int       `json:"guestCount" validate:"gt=0"`
	Pincode        string    `json:"pincode" validate:"required,max=10"`
	Address        string    `json:"address" validate:"required,max=2000"`
	PackageID      string    `json:"packageId" validate:"required"`
	PackageName    string    `json:"packageName" validate:"required,max=255"`
	PerPlatePrice  float64   `json:"perPlatePrice" validate:"gte=0"`
} // @name CreateOrderRequest

// CreateOrderResponse is returned on successful order creation.
type CreateOrderResponse struct {
	OrderID string `json:"orderId" example:"ORD_4f2c1a0b9d8e47f6a5b3c2d1e0f9a8b7"`
} // @name CreateOrderResponse

// PostOrderHandler handles POST /orders requests.
type PostOrderHandler struct {
	svc *appsvcs.Services
}

// NewPostOrderHandler returns a PostOrderHandler backed by the given services.
func NewPostOrderHandler(svc *appsvcs.Services) *PostOrderHandler {
	return &PostOrderHandler{svc: svc}
}

// Execute creates a new order in Pending status.
//
//	@Summary		Create order
//	@Description	Creates a new order with a generated ORD_ id and Pending status
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order"
//	@Success		201		{object}	CreateOrderResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/orders [post]
func (h *PostOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateOrderRequest](w, r)
	if !ok {
		return
	}

	order := &models.Order{
		CatererID: req.CatererID,
		Customer: models.Customer{
			UserID: req.CustomerUserID,
			Name:   req.CustomerName,
			Phone:  req.CustomerPhone,
		},
		EventDateTime: req.EventDateTime,
		GuestCount:    req.GuestCount,
		Location: models.Location{
			Pincode: req.Pincode,
			Address: req.Address,
		},
		Package: models.PackageSnapshot{
			PackageID:     req.PackageID,
			Name:          req.PackageName,
			PerPlatePrice: req.PerPlatePrice,
		},
	}

	created, err := h.svc.Orders.Create(r.Context(), order)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreateOrderResponse{OrderID: created.OrderID})
}
