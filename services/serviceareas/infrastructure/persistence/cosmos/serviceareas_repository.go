package cosmos

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	pkgcosmos "github.com/naatukodi/catering/pkg/cosmos"
	areasdomain "github.com/naatukodi/catering/services/serviceareas/domain"
	"github.com/naatukodi/catering/services/serviceareas/domain/models"
)

// ServiceAreasRepository implements repositories.ServiceAreasRepository
// against the serviceareas container (partition key /pincode).
type ServiceAreasRepository struct {
	container *azcosmos.ContainerClient
}

// NewServiceAreasRepository returns a ServiceAreasRepository backed by the
// store's serviceareas container.
func NewServiceAreasRepository(store *pkgcosmos.Store) *ServiceAreasRepository {
	return &ServiceAreasRepository{container: store.ServiceAreas}
}

// Get point-reads the mapping by its composite id.
func (r *ServiceAreasRepository) Get(ctx context.Context, pincode, catererID string) (*models.ServiceArea, error) {
	pk := azcosmos.NewPartitionKeyString(pincode)
	area, err := pkgcosmos.ReadItem[models.ServiceArea](ctx, r.container, pk, models.ComposeID(pincode, catererID))
	if err != nil {
		if pkgcosmos.IsNotFound(err) {
			return nil, areasdomain.ErrServiceAreaNotFound
		}
		return nil, fmt.Errorf("read service area: %w", err)
	}
	return &area, nil
}

// Upsert inserts or replaces the mapping document.
func (r *ServiceAreasRepository) Upsert(ctx context.Context, area *models.ServiceArea) error {
	area.ID = models.ComposeID(area.Pincode, area.CatererID)
	area.Type = models.TypeServiceArea
	if area.CreatedAt.IsZero() {
		area.CreatedAt = time.Now().UTC()
	}

	raw, err := json.Marshal(area)
	if err != nil {
		return fmt.Errorf("marshal service area: %w", err)
	}
	pk := azcosmos.NewPartitionKeyString(area.Pincode)
	if _, err := r.container.UpsertItem(ctx, pk, raw, nil); err != nil {
		return fmt.Errorf("upsert service area: %w", err)
	}
	return nil
}

// Delete removes the mapping for exactly this pincode/caterer pair.
func (r *ServiceAreasRepository) Delete(ctx context.Context, pincode, catererID string) error {
	pk := azcosmos.NewPartitionKeyString(pincode)
	if _, err := r.container.DeleteItem(ctx, pk, models.ComposeID(pincode, catererID), nil); err != nil {
		if pkgcosmos.IsNotFound(err) {
			return areasdomain.ErrServiceAreaNotFound
		}
		return fmt.Errorf("delete service area: %w", err)
	}
	return nil
}

// ListByPincode fetches one page of mappings for the pincode, scoped to its
// partition. Ordering relies on the (rank DESC, createdAt DESC) composite
// index created at provisioning.
func (r *ServiceAreasRepository) ListByPincode(ctx context.Context, pincode string, opts pkgcosmos.ListOptions) (pkgcosmos.Page[models.ServiceArea], error) {
	query := "SELECT * FROM c WHERE c.type = 'serviceArea' AND c.pincode = @pc ORDER BY c.rank DESC, c.createdAt DESC"
	params := []azcosmos.QueryParameter{{Name: "@pc", Value: pincode}}

	pk := azcosmos.NewPartitionKeyString(pincode)
	page, err := pkgcosmos.QueryPage[models.ServiceArea](ctx, r.container, query, params, pk, opts)
	if err != nil {
		return pkgcosmos.Page[models.ServiceArea]{}, fmt.Errorf("list service areas by pincode: %w", err)
	}
	return page, nil
}

// ListPincodesForCaterer fetches one page of the caterer's covered pincodes
// across partitions, projecting only the pincode value.
func (r *ServiceAreasRepository) ListPincodesForCaterer(ctx context.Context, catererID string, opts pkgcosmos.ListOptions) (pkgcosmos.Page[string], error) {
	query := "SELECT VALUE c.pincode FROM c WHERE c.type = 'serviceArea' AND c.catererId = @cid ORDER BY c.pincode"
	params := []azcosmos.QueryParameter{{Name: "@cid", Value: catererID}}

	page, err := pkgcosmos.QueryPage[string](ctx, r.container, query, params, pkgcosmos.CrossPartition(), opts)
	if err != nil {
		return pkgcosmos.Page[string]{}, fmt.Errorf("list pincodes for caterer: %w", err)
	}
	return page, nil
}
