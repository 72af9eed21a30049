package repositories

import (
	"context"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/services/catalog/domain/models"
)

// MenuItemFilter narrows ListMenuItems. Zero-value fields are not applied.
type MenuItemFilter struct {
	Category   string
	VegType    string
	OnlyActive bool
}

// CatalogRepository is the persistence interface for the catalog aggregate:
// caterer profiles, menu items, and packages sharing one container.
// The domain layer owns this interface; infrastructure implements it.
type CatalogRepository interface {
	// GetCaterer returns the caterer profile or ErrCatererNotFound.
	GetCaterer(ctx context.Context, catererID string) (*models.Caterer, error)

	// UpsertCaterer inserts or fully replaces the caterer profile, forcing
	// id == catererId and the caterer type tag.
	UpsertCaterer(ctx context.Context, caterer *models.Caterer) error

	// ListMenuItems returns one page of the caterer's menu items, newest
	// first, applying any set filter fields.
	ListMenuItems(ctx context.Context, catererID string, filter MenuItemFilter, opts cosmos.ListOptions) (cosmos.Page[models.MenuItem], error)

	// CreateMenuItem inserts a new menu item, assigning a generated id if
	// absent. Returns ErrCatalogItemExists on id collision.
	CreateMenuItem(ctx context.Context, catererID string, item *models.MenuItem) (*models.MenuItem, error)

	// ListPackages returns one page of the caterer's packages, newest first.
	ListPackages(ctx context.Context, catererID string, onlyActive bool, opts cosmos.ListOptions) (cosmos.Page[models.Package], error)

	// CreatePackage inserts a new package, assigning a generated id if
	// absent. Returns ErrCatalogItemExists on id collision.
	CreatePackage(ctx context.Context, catererID string, pkg *models.Package) (*models.Package, error)
}
