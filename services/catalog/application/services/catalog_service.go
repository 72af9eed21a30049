package services

import (
	"context"
	"fmt"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/services/catalog/domain/models"
	"github.com/naatukodi/catering/services/catalog/domain/repositories"
)

// CatalogService orchestrates caterer profile, menu item, and package
// operations. It holds no state between requests; all persistence is
// delegated to the repository.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService returns a CatalogService wired with the given repository.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// GetCaterer retrieves a caterer profile by id.
func (s *CatalogService) GetCaterer(ctx context.Context, catererID string) (*models.Caterer, error) {
	caterer, err := s.repo.GetCaterer(ctx, catererID)
	if err != nil {
		return nil, fmt.Errorf("get caterer: %w", err)
	}
	return caterer, nil
}

// UpsertCaterer inserts or replaces the caterer profile.
func (s *CatalogService) UpsertCaterer(ctx context.Context, caterer *models.Caterer) error {
	if err := s.repo.UpsertCaterer(ctx, caterer); err != nil {
		return fmt.Errorf("upsert caterer: %w", err)
	}
	return nil
}

// ListMenuItems returns one page of menu items for the caterer.
func (s *CatalogService) ListMenuItems(ctx context.Context, catererID string, filter repositories.MenuItemFilter, opts cosmos.ListOptions) (cosmos.Page[models.MenuItem], error) {
	page, err := s.repo.ListMenuItems(ctx, catererID, filter, opts)
	if err != nil {
		return cosmos.Page[models.MenuItem]{}, fmt.Errorf("list menu items: %w", err)
	}
	return page, nil
}

// CreateMenuItem persists a new menu item for the caterer.
func (s *CatalogService) CreateMenuItem(ctx context.Context, catererID string, item *models.MenuItem) (*models.MenuItem, error) {
	created, err := s.repo.CreateMenuItem(ctx, catererID, item)
	if err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return created, nil
}

// ListPackages returns one page of packages for the caterer.
func (s *CatalogService) ListPackages(ctx context.Context, catererID string, onlyActive bool, opts cosmos.ListOptions) (cosmos.Page[models.Package], error) {
	page, err := s.repo.ListPackages(ctx, catererID, onlyActive, opts)
	if err != nil {
		return cosmos.Page[models.Package]{}, fmt.Errorf("list packages: %w", err)
	}
	return page, nil
}

// CreatePackage persists a new package for the caterer.
func (s *CatalogService) CreatePackage(ctx context.Context, catererID string, pkg *models.Package) (*models.Package, error) {
	created, err := s.repo.CreatePackage(ctx, catererID, pkg)
	if err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}
	return created, nil
}
