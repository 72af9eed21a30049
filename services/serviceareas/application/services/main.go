package services

import (
	"github.com/naatukodi/catering/pkg/app"
	"github.com/naatukodi/catering/services/serviceareas/infrastructure/persistence/cosmos"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	ServiceAreas *ServiceAreasService
}

// New wires all service-area application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := cosmos.NewServiceAreasRepository(a.Store)
	return &Services{
		ServiceAreas: NewServiceAreasService(repo),
	}
}
