package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/app"
	"github.com/naatukodi/catering/services/orders/application/handlers"
	appsvcs "github.com/naatukodi/catering/services/orders/application/services"
)

// OrderRoutes registers order endpoints on the provided chi router.
func OrderRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", handlers.NewPostOrderHandler(svcs).Execute)
		r.Get("/{orderId}", handlers.NewGetOrderHandler(svcs).Execute)
		r.Post("/{orderId}/status", handlers.NewPostStatusHandler(svcs).Execute)
		r.Get("/by-customer/{userId}", handlers.NewListByCustomerHandler(svcs).Execute)
		r.Get("/by-caterer/{catererId}/day", handlers.NewListCatererDayHandler(svcs).Execute)
	})
}
