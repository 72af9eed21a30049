package services

import (
	"github.com/naatukodi/catering/pkg/app"
	"github.com/naatukodi/catering/services/catalog/infrastructure/persistence/cosmos"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog *CatalogService
}

// New wires all catalog application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := cosmos.NewCatalogRepository(a.Store)
	return &Services{
		Catalog: NewCatalogService(repo),
	}
}
