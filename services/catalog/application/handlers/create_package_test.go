package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/naatukodi/catering/pkg/cosmos"
	appsvcs "github.com/naatukodi/catering/services/catalog/application/services"
	"github.com/naatukodi/catering/services/catalog/domain/models"
	"github.com/naatukodi/catering/services/catalog/domain/repositories"
)

type fakeCatalogRepo struct {
	lastMenuItem *models.MenuItem
	lastPackage  *models.Package
}

func (f *fakeCatalogRepo) GetCaterer(ctx context.Context, catererID string) (*models.Caterer, error) {
	return &models.Caterer{CatererID: catererID}, nil
}

func (f *fakeCatalogRepo) UpsertCaterer(ctx context.Context, caterer *models.Caterer) error {
	return nil
}

func (f *fakeCatalogRepo) ListMenuItems(ctx context.Context, catererID string, filter repositories.MenuItemFilter, opts cosmos.ListOptions) (cosmos.Page[models.MenuItem], error) {
	return cosmos.Page[models.MenuItem]{}, nil
}

func (f *fakeCatalogRepo) CreateMenuItem(ctx context.Context, catererID string, item *models.MenuItem) (*models.MenuItem, error) {
	item.ID = models.NewMenuItemID()
	f.lastMenuItem = item
	return item, nil
}

func (f *fakeCatalogRepo) ListPackages(ctx context.Context, catererID string, onlyActive bool, opts cosmos.ListOptions) (cosmos.Page[models.Package], error) {
	return cosmos.Page[models.Package]{}, nil
}

func (f *fakeCatalogRepo) CreatePackage(ctx context.Context, catererID string, pkg *models.Package) (*models.Package, error) {
	pkg.ID = models.NewPackageID()
	f.lastPackage = pkg
	return pkg, nil
}

func catalogServices(repo *fakeCatalogRepo) *appsvcs.Services {
	return &appsvcs.Services{Catalog: appsvcs.NewCatalogService(repo)}
}

func TestCreatePackageHandler(t *testing.T) {
	t.Run("omitted isActive stores an active package", func(t *testing.T) {
		repo := &fakeCatalogRepo{}
		h := NewCreatePackageHandler(catalogServices(repo))

		body := `{"name":"Wedding Silver","perPlatePrice":450,"items":[{"menuItemId":"MI_1","qtyPerPlate":1}]}`
		rec := httptest.NewRecorder()
		h.Execute(rec, httptest.NewRequest("POST", "/catalog/CAT_1/packages", strings.NewReader(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if repo.lastPackage == nil {
			t.Fatal("expected a package to be stored")
		}
		if !repo.lastPackage.IsActive {
			t.Fatal("expected omitted isActive to default to active")
		}
	})

	t.Run("explicit isActive false is respected", func(t *testing.T) {
		repo := &fakeCatalogRepo{}
		h := NewCreatePackageHandler(catalogServices(repo))

		body := `{"name":"Retired Menu","items":[{"menuItemId":"MI_1","qtyPerPlate":1}],"isActive":false}`
		rec := httptest.NewRecorder()
		h.Execute(rec, httptest.NewRequest("POST", "/catalog/CAT_1/packages", strings.NewReader(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if repo.lastPackage.IsActive {
			t.Fatal("expected explicit isActive=false to be stored inactive")
		}
	})

	t.Run("missing items rejected", func(t *testing.T) {
		repo := &fakeCatalogRepo{}
		h := NewCreatePackageHandler(catalogServices(repo))

		body := `{"name":"Empty"}`
		rec := httptest.NewRecorder()
		h.Execute(rec, httptest.NewRequest("POST", "/catalog/CAT_1/packages", strings.NewReader(body)))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected status 422, got %d", rec.Code)
		}
	})
}

func TestCreateMenuItemHandlerDefaults(t *testing.T) {
	t.Run("omitted vegType, category, and unit get defaults", func(t *testing.T) {
		repo := &fakeCatalogRepo{}
		h := NewCreateMenuItemHandler(catalogServices(repo))

		body := `{"name":"Paneer Tikka"}`
		rec := httptest.NewRecorder()
		h.Execute(rec, httptest.NewRequest("POST", "/catalog/CAT_1/menuitems", strings.NewReader(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		got := repo.lastMenuItem
		if got.VegType != models.VegTypeVeg {
			t.Fatalf("expected vegType %q, got %q", models.VegTypeVeg, got.VegType)
		}
		if got.Category != models.CategoryMain {
			t.Fatalf("expected category %q, got %q", models.CategoryMain, got.Category)
		}
		if got.Unit != "plate" {
			t.Fatalf("expected unit plate, got %q", got.Unit)
		}
		if !got.IsActive {
			t.Fatal("expected new menu item to be active")
		}
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		repo := &fakeCatalogRepo{}
		h := NewCreateMenuItemHandler(catalogServices(repo))

		body := `{"name":"Chicken 65","vegType":"NonVeg","category":"Starter","unit":"kg"}`
		rec := httptest.NewRecorder()
		h.Execute(rec, httptest.NewRequest("POST", "/catalog/CAT_1/menuitems", strings.NewReader(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		got := repo.lastMenuItem
		if got.VegType != models.VegTypeNonVeg || got.Category != models.CategoryStarter || got.Unit != "kg" {
			t.Fatalf("expected explicit values kept, got %q/%q/%q", got.VegType, got.Category, got.Unit)
		}
	})

	t.Run("invalid vegType still rejected", func(t *testing.T) {
		repo := &fakeCatalogRepo{}
		h := NewCreateMenuItemHandler(catalogServices(repo))

		body := `{"name":"Mystery","vegType":"Vegan"}`
		rec := httptest.NewRecorder()
		h.Execute(rec, httptest.NewRequest("POST", "/catalog/CAT_1/menuitems", strings.NewReader(body)))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected status 422, got %d", rec.Code)
		}
	})
}
