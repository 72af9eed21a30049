package services

import (
	"context"
	"fmt"

	"github.com/naatukodi/catering/pkg/cosmos"
	usersdomain "github.com/naatukodi/catering/services/users/domain"
	"github.com/naatukodi/catering/services/users/domain/models"
	"github.com/naatukodi/catering/services/users/domain/repositories"
)

// UsersService orchestrates registration, lookups, and profile updates.
type UsersService struct {
	repo repositories.UsersRepository
}

// NewUsersService returns a UsersService wired with the given repository.
func NewUsersService(repo repositories.UsersRepository) *UsersService {
	return &UsersService{repo: repo}
}

// Register checks email and phone for duplicates, then creates the user with
// a generated id and Active status.
//
// The duplicate check is advisory: check-then-insert is not atomic, so two
// concurrent registrations with the same email can both succeed. The store
// has no uniqueness constraint to close the window.
func (s *UsersService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Email != "" {
		existing, err := s.repo.GetByEmail(ctx, user.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if existing != nil {
			return nil, usersdomain.ErrEmailTaken
		}
	}
	if user.Phone != "" {
		existing, err := s.repo.GetByPhone(ctx, user.Phone)
		if err != nil {
			return nil, fmt.Errorf("check phone: %w", err)
		}
		if existing != nil {
			return nil, usersdomain.ErrPhoneTaken
		}
	}

	id := models.NewUserID()
	user.ID = id
	user.UserID = id
	user.Status = models.StatusActive

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	return created, nil
}

// Get retrieves one user by id.
func (s *UsersService) Get(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateProfile merges the non-empty fields into the stored user and writes
// the result back with a full upsert. Read-modify-write without a concurrency
// token: a concurrent writer is silently overwritten (last-write-wins).
func (s *UsersService) UpdateProfile(ctx context.Context, userID, name, phone, status string) error {
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}
	if status != "" {
		user.Status = status
	}

	if err := s.repo.Upsert(ctx, user); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// GetByEmail finds a user by email, case-insensitively. Returns nil when no
// user matches.
func (s *UsersService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

// GetByPhone finds a user by phone as stored. Returns nil when no user matches.
func (s *UsersService) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	user, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("get user by phone: %w", err)
	}
	return user, nil
}

// ListByRole returns one page of users with the given role.
func (s *UsersService) ListByRole(ctx context.Context, role string, opts cosmos.ListOptions) (cosmos.Page[models.User], error) {
	page, err := s.repo.ListByRole(ctx, role, opts)
	if err != nil {
		return cosmos.Page[models.User]{}, fmt.Errorf("list users by role: %w", err)
	}
	return page, nil
}
