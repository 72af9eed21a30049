package repositories

import (
	"context"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/services/users/domain/models"
)

// UsersRepository is the persistence interface for the User aggregate.
// The domain layer owns this interface; infrastructure implements it.
type UsersRepository interface {
	// Get returns the user or ErrUserNotFound.
	Get(ctx context.Context, userID string) (*models.User, error)

	// Create inserts the user as a new document, forcing id == userId and
	// lower-casing the email. Returns ErrUserExists on id collision.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// Upsert inserts or fully replaces the user with the same normalization.
	Upsert(ctx context.Context, user *models.User) error

	// GetByEmail returns the first user with this email (matched
	// lower-cased) or nil when none exists. Uniqueness is not guaranteed.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByPhone returns the first user with this phone (matched as stored)
	// or nil when none exists.
	GetByPhone(ctx context.Context, phone string) (*models.User, error)

	// ListByRole returns one page of users with the given role, newest first.
	ListByRole(ctx context.Context, role string, opts cosmos.ListOptions) (cosmos.Page[models.User], error)
}
