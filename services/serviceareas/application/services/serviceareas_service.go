package services

import (
	"context"
	"fmt"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/services/serviceareas/domain/models"
	"github.com/naatukodi/catering/services/serviceareas/domain/repositories"
)

// ServiceAreasService orchestrates pincode coverage lookups and updates.
type ServiceAreasService struct {
	repo repositories.ServiceAreasRepository
}

// NewServiceAreasService returns a ServiceAreasService wired with the given repository.
func NewServiceAreasService(repo repositories.ServiceAreasRepository) *ServiceAreasService {
	return &ServiceAreasService{repo: repo}
}

// Get retrieves one coverage mapping.
func (s *ServiceAreasService) Get(ctx context.Context, pincode, catererID string) (*models.ServiceArea, error) {
	area, err := s.repo.Get(ctx, pincode, catererID)
	if err != nil {
		return nil, fmt.Errorf("get service area: %w", err)
	}
	return area, nil
}

// Upsert inserts or replaces one coverage mapping.
func (s *ServiceAreasService) Upsert(ctx context.Context, area *models.ServiceArea) error {
	if err := s.repo.Upsert(ctx, area); err != nil {
		return fmt.Errorf("upsert service area: %w", err)
	}
	return nil
}

// Delete removes one coverage mapping.
func (s *ServiceAreasService) Delete(ctx context.Context, pincode, catererID string) error {
	if err := s.repo.Delete(ctx, pincode, catererID); err != nil {
		return fmt.Errorf("delete service area: %w", err)
	}
	return nil
}

// ListByPincode returns one page of caterers covering a pincode.
func (s *ServiceAreasService) ListByPincode(ctx context.Context, pincode string, opts cosmos.ListOptions) (cosmos.Page[models.ServiceArea], error) {
	page, err := s.repo.ListByPincode(ctx, pincode, opts)
	if err != nil {
		return cosmos.Page[models.ServiceArea]{}, fmt.Errorf("list service areas: %w", err)
	}
	return page, nil
}

// ListPincodesForCaterer returns one page of pincodes the caterer serves.
func (s *ServiceAreasService) ListPincodesForCaterer(ctx context.Context, catererID string, opts cosmos.ListOptions) (cosmos.Page[string], error) {
	page, err := s.repo.ListPincodesForCaterer(ctx, catererID, opts)
	if err != nil {
		return cosmos.Page[string]{}, fmt.Errorf("list pincodes: %w", err)
	}
	return page, nil
}
