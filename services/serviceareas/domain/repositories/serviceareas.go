package repositories

import (
	"context"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/services/serviceareas/domain/models"
)

// ServiceAreasRepository is the persistence interface for the ServiceArea
// aggregate. The domain layer owns this interface; infrastructure implements it.
type ServiceAreasRepository interface {
	// Get returns the coverage mapping for the pincode/caterer pair or
	// ErrServiceAreaNotFound.
	Get(ctx context.Context, pincode, catererID string) (*models.ServiceArea, error)

	// Upsert inserts or fully replaces the mapping, composing the document
	// id from the pincode/caterer pair.
	Upsert(ctx context.Context, area *models.ServiceArea) error

	// Delete removes exactly the mapping for the pair. Returns
	// ErrServiceAreaNotFound if it does not exist.
	Delete(ctx context.Context, pincode, catererID string) error

	// ListByPincode returns one page of caterers covering the pincode,
	// highest rank first, then newest first.
	ListByPincode(ctx context.Context, pincode string, opts cosmos.ListOptions) (cosmos.Page[models.ServiceArea], error)

	// ListPincodesForCaterer returns one page of pincodes the caterer
	// serves, in lexicographic order. Cross-partition by necessity.
	ListPincodesForCaterer(ctx context.Context, catererID string, opts cosmos.ListOptions) (cosmos.Page[string], error)
}
