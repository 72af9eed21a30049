package services

import (
	"github.com/naatukodi/catering/pkg/app"
	"github.com/naatukodi/catering/services/users/infrastructure/persistence/cosmos"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Users *UsersService
}

// New wires all users application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := cosmos.NewUsersRepository(a.Store)
	return &Services{
		Users: NewUsersService(repo),
	}
}
