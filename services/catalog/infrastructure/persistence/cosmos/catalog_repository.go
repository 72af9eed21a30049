package cosmos

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	pkgcosmos "github.com/naatukodi/catering/pkg/cosmos"
	catalogdomain "github.com/naatukodi/catering/services/catalog/domain"
	"github.com/naatukodi/catering/services/catalog/domain/models"
	"github.com/naatukodi/catering/services/catalog/domain/repositories"
)

// CatalogRepository implements repositories.CatalogRepository against the
// shared catalog container (partition key /catererId).
type CatalogRepository struct {
	container *azcosmos.ContainerClient
}

// NewCatalogRepository returns a CatalogRepository backed by the store's
// catalog container.
func NewCatalogRepository(store *pkgcosmos.Store) *CatalogRepository {
	return &CatalogRepository{container: store.Catalog}
}

// GetCaterer point-reads the caterer profile. id == catererId by invariant.
func (r *CatalogRepository) GetCaterer(ctx context.Context, catererID string) (*models.Caterer, error) {
	pk := azcosmos.NewPartitionKeyString(catererID)
	caterer, err := pkgcosmos.ReadItem[models.Caterer](ctx, r.container, pk, catererID)
	if err != nil {
		if pkgcosmos.IsNotFound(err) {
			return nil, catalogdomain.ErrCatererNotFound
		}
		return nil, fmt.Errorf("read caterer: %w", err)
	}
	return &caterer, nil
}

// UpsertCaterer inserts or replaces the caterer profile document.
func (r *CatalogRepository) UpsertCaterer(ctx context.Context, caterer *models.Caterer) error {
	caterer.ID = caterer.CatererID
	caterer.Type = models.TypeCaterer
	if caterer.CreatedAt.IsZero() {
		caterer.CreatedAt = time.Now().UTC()
	}

	raw, err := json.Marshal(caterer)
	if err != nil {
		return fmt.Errorf("marshal caterer: %w", err)
	}
	pk := azcosmos.NewPartitionKeyString(caterer.CatererID)
	if _, err := r.container.UpsertItem(ctx, pk, raw, nil); err != nil {
		return fmt.Errorf("upsert caterer: %w", err)
	}
	return nil
}

// ListMenuItems fetches one page of menu items for the caterer, scoped to its
// partition.
func (r *CatalogRepository) ListMenuItems(ctx context.Context, catererID string, filter repositories.MenuItemFilter, opts pkgcosmos.ListOptions) (pkgcosmos.Page[models.MenuItem], error) {
	query, params := buildMenuItemsQuery(catererID, filter)
	pk := azcosmos.NewPartitionKeyString(catererID)
	page, err := pkgcosmos.QueryPage[models.MenuItem](ctx, r.container, query, params, pk, opts)
	if err != nil {
		return pkgcosmos.Page[models.MenuItem]{}, fmt.Errorf("list menu items: %w", err)
	}
	return page, nil
}

// CreateMenuItem inserts the item as a new document.
func (r *CatalogRepository) CreateMenuItem(ctx context.Context, catererID string, item *models.MenuItem) (*models.MenuItem, error) {
	item.CatererID = catererID
	item.Type = models.TypeMenuItem
	if item.ID == "" {
		item.ID = models.NewMenuItemID()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	if err := r.createItem(ctx, catererID, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return item, nil
}

// ListPackages fetches one page of packages for the caterer.
func (r *CatalogRepository) ListPackages(ctx context.Context, catererID string, onlyActive bool, opts pkgcosmos.ListOptions) (pkgcosmos.Page[models.Package], error) {
	query, params := buildPackagesQuery(catererID, onlyActive)
	pk := azcosmos.NewPartitionKeyString(catererID)
	page, err := pkgcosmos.QueryPage[models.Package](ctx, r.container, query, params, pk, opts)
	if err != nil {
		return pkgcosmos.Page[models.Package]{}, fmt.Errorf("list packages: %w", err)
	}
	return page, nil
}

// CreatePackage inserts the package as a new document.
func (r *CatalogRepository) CreatePackage(ctx context.Context, catererID string, pkg *models.Package) (*models.Package, error) {
	pkg.CatererID = catererID
	pkg.Type = models.TypePackage
	if pkg.ID == "" {
		pkg.ID = models.NewPackageID()
	}
	if pkg.CreatedAt.IsZero() {
		pkg.CreatedAt = time.Now().UTC()
	}

	if err := r.createItem(ctx, catererID, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}
	return pkg, nil
}

func (r *CatalogRepository) createItem(ctx context.Context, catererID string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	pk := azcosmos.NewPartitionKeyString(catererID)
	if _, err := r.container.CreateItem(ctx, pk, raw, nil); err != nil {
		if pkgcosmos.IsConflict(err) {
			return catalogdomain.ErrCatalogItemExists
		}
		return err
	}
	return nil
}

// buildMenuItemsQuery assembles the menu item list query. Equality filters
// are appended only for filter fields that are set.
func buildMenuItemsQuery(catererID string, filter repositories.MenuItemFilter) (string, []azcosmos.QueryParameter) {
	var sb strings.Builder
	sb.WriteString("SELECT * FROM c WHERE c.type = 'menuItem' AND c.catererId = @cid")
	params := []azcosmos.QueryParameter{{Name: "@cid", Value: catererID}}

	if filter.Category != "" {
		sb.WriteString(" AND c.category = @cat")
		params = append(params, azcosmos.QueryParameter{Name: "@cat", Value: filter.Category})
	}
	if filter.VegType != "" {
		sb.WriteString(" AND c.vegType = @veg")
		params = append(params, azcosmos.QueryParameter{Name: "@veg", Value: filter.VegType})
	}
	if filter.OnlyActive {
		sb.WriteString(" AND c.isActive = true")
	}

	sb.WriteString(" ORDER BY c.createdAt DESC")
	return sb.String(), params
}

// buildPackagesQuery assembles the package list query.
func buildPackagesQuery(catererID string, onlyActive bool) (string, []azcosmos.QueryParameter) {
	query := "SELECT * FROM c WHERE c.type = 'package' AND c.catererId = @cid"
	if onlyActive {
		query += " AND c.isActive = true"
	}
	query += " ORDER BY c.createdAt DESC"
	return query, []azcosmos.QueryParameter{{Name: "@cid", Value: catererID}}
}
