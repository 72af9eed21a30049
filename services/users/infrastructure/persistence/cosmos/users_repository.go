package cosmos

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	pkgcosmos "github.com/naatukodi/catering/pkg/cosmos"
	usersdomain "github.com/naatukodi/catering/services/users/domain"
	"github.com/naatukodi/catering/services/users/domain/models"
)

// UsersRepository implements repositories.UsersRepository against the users
// container (partition key /userId).
type UsersRepository struct {
	container *azcosmos.ContainerClient
}

// NewUsersRepository returns a UsersRepository backed by the store's users
// container.
func NewUsersRepository(store *pkgcosmos.Store) *UsersRepository {
	return &UsersRepository{container: store.Users}
}

// Get point-reads one user. id == userId by invariant.
func (r *UsersRepository) Get(ctx context.Context, userID string) (*models.User, error) {
	pk := azcosmos.NewPartitionKeyString(userID)
	user, err := pkgcosmos.ReadItem[models.User](ctx, r.container, pk, userID)
	if err != nil {
		if pkgcosmos.IsNotFound(err) {
			return nil, usersdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("read user: %w", err)
	}
	return &user, nil
}

// Create inserts the user as a new document.
func (r *UsersRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	normalize(user)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("marshal user: %w", err)
	}
	pk := azcosmos.NewPartitionKeyString(user.UserID)
	if _, err := r.container.CreateItem(ctx, pk, raw, nil); err != nil {
		if pkgcosmos.IsConflict(err) {
			return nil, usersdomain.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Upsert inserts or replaces the user document.
func (r *UsersRepository) Upsert(ctx context.Context, user *models.User) error {
	normalize(user)

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	pk := azcosmos.NewPartitionKeyString(user.UserID)
	if _, err := r.container.UpsertItem(ctx, pk, raw, nil); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// GetByEmail finds the first user with this email across partitions.
// Returns nil without error when no user matches.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := "SELECT TOP 1 * FROM c WHERE c.type = 'user' AND c.email = @e"
	params := []azcosmos.QueryParameter{{Name: "@e", Value: models.NormalizeEmail(email)}}
	return r.queryOne(ctx, query, params)
}

// GetByPhone finds the first user with this phone across partitions.
// The phone is matched exactly as stored; no normalization is applied.
func (r *UsersRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	query := "SELECT TOP 1 * FROM c WHERE c.type = 'user' AND c.phone = @p"
	params := []azcosmos.QueryParameter{{Name: "@p", Value: phone}}
	return r.queryOne(ctx, query, params)
}

// ListByRole fetches one page of users with the given role across partitions.
func (r *UsersRepository) ListByRole(ctx context.Context, role string, opts pkgcosmos.ListOptions) (pkgcosmos.Page[models.User], error) {
	query := "SELECT * FROM c WHERE c.type = 'user' AND c.role = @r ORDER BY c.createdAt DESC"
	params := []azcosmos.QueryParameter{{Name: "@r", Value: role}}

	page, err := pkgcosmos.QueryPage[models.User](ctx, r.container, query, params, pkgcosmos.CrossPartition(), opts)
	if err != nil {
		return pkgcosmos.Page[models.User]{}, fmt.Errorf("list users by role: %w", err)
	}
	return page, nil
}

func (r *UsersRepository) queryOne(ctx context.Context, query string, params []azcosmos.QueryParameter) (*models.User, error) {
	page, err := pkgcosmos.QueryPage[models.User](ctx, r.container, query, params, pkgcosmos.CrossPartition(), pkgcosmos.ListOptions{PageSize: 1})
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	if len(page.Items) == 0 {
		return nil, nil
	}
	return &page.Items[0], nil
}

func normalize(user *models.User) {
	user.ID = user.UserID
	user.Type = models.TypeUser
	if user.Email != "" {
		user.Email = models.NormalizeEmail(user.Email)
	}
}
