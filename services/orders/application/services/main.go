package services

import (
	"github.com/naatukodi/catering/pkg/app"
	"github.com/naatukodi/catering/services/orders/infrastructure/persistence/cosmos"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Orders *OrdersService
}

// New wires all orders application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := cosmos.NewOrdersRepository(a.Store)
	return &Services{
		Orders: NewOrdersService(repo),
	}
}
