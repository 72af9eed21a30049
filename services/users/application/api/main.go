package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/app"
	"github.com/naatukodi/catering/services/users/application/handlers"
	appsvcs "github.com/naatukodi/catering/services/users/application/services"
)

// UserRoutes registers user endpoints on the provided chi router.
func UserRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/users", func(r chi.Router) {
		r.Post("/", handlers.NewRegisterHandler(svcs).Execute)
		r.Get("/by-email", handlers.NewGetByEmailHandler(svcs).Execute)
		r.Get("/by-phone", handlers.NewGetByPhoneHandler(svcs).Execute)
		r.Get("/by-role/{role}", handlers.NewListByRoleHandler(svcs).Execute)
		r.Get("/{userId}", handlers.NewGetUserHandler(svcs).Execute)
		r.Put("/{userId}", handlers.NewUpdateUserHandler(svcs).Execute)
	})
}
