package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/app"
	"github.com/naatukodi/catering/services/catalog/application/handlers"
	appsvcs "github.com/naatukodi/catering/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/catalog/{catererId}", func(r chi.Router) {
		r.Get("/", handlers.NewGetCatererHandler(svcs).Execute)
		r.Post("/", handlers.NewUpsertCatererHandler(svcs).Execute)
		r.Get("/menuitems", handlers.NewListMenuItemsHandler(svcs).Execute)
		r.Post("/menuitems", handlers.NewCreateMenuItemHandler(svcs).Execute)
		r.Get("/packages", handlers.NewListPackagesHandler(svcs).Execute)
		r.Post("/packages", handlers.NewCreatePackageHandler(svcs).Execute)
	})
}
