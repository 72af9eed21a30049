package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/app"
	"github.com/naatukodi/catering/services/serviceareas/application/handlers"
	appsvcs "github.com/naatukodi/catering/services/serviceareas/application/services"
)

// ServiceAreaRoutes registers service-area endpoints on the provided chi router.
func ServiceAreaRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/serviceareas", func(r chi.Router) {
		r.Get("/by-caterer/{catererId}", handlers.NewListByCatererHandler(svcs).Execute)
		r.Get("/{pincode}", handlers.NewListByPincodeHandler(svcs).Execute)
		r.Post("/{pincode}", handlers.NewUpsertAreaHandler(svcs).Execute)
		r.Delete("/{pincode}/{catererId}", handlers.NewDeleteAreaHandler(svcs).Execute)
	})
}
