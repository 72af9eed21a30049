package cosmos

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	pkgcosmos "github.com/naatukodi/catering/pkg/cosmos"
	ordersdomain "github.com/naatukodi/catering/services/orders/domain"
	"github.com/naatukodi/catering/services/orders/domain/models"
)

// OrdersRepository implements repositories.OrdersRepository against the
// orders container (partition key /orderId).
type OrdersRepository struct {
	container *azcosmos.ContainerClient
}

// NewOrdersRepository returns an OrdersRepository backed by the store's
// orders container.
func NewOrdersRepository(store *pkgcosmos.Store) *OrdersRepository {
	return &OrdersRepository{container: store.Orders}
}

// Get point-reads one order. id == orderId by invariant.
func (r *OrdersRepository) Get(ctx context.Context, orderID string) (*models.Order, error) {
	pk := azcosmos.NewPartitionKeyString(orderID)
	order, err := pkgcosmos.ReadItem[models.Order](ctx, r.container, pk, orderID)
	if err != nil {
		if pkgcosmos.IsNotFound(err) {
			return nil, ordersdomain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("read order: %w", err)
	}
	return &order, nil
}

// Create inserts the order as a new document.
func (r *OrdersRepository) Create(ctx context.Context, order *models.Order) error {
	order.ID = order.OrderID
	order.Type = models.TypeOrder
	order.CreatedAt = time.Now().UTC()
	order.LastUpdatedAt = order.CreatedAt

	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	pk := azcosmos.NewPartitionKeyString(order.OrderID)
	if _, err := r.container.CreateItem(ctx, pk, raw, nil); err != nil {
		if pkgcosmos.IsConflict(err) {
			return ordersdomain.ErrOrderExists
		}
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// UpdateStatus patches status and lastUpdatedAt without rewriting the
// document. The store rejects the patch with 404 when the order is absent.
func (r *OrdersRepository) UpdateStatus(ctx context.Context, orderID, newStatus string) error {
	patch := azcosmos.PatchOperations{}
	patch.AppendReplace("/status", newStatus)
	patch.AppendReplace("/lastUpdatedAt", time.Now().UTC())

	pk := azcosmos.NewPartitionKeyString(orderID)
	if _, err := r.container.PatchItem(ctx, pk, orderID, patch, nil); err != nil {
		if pkgcosmos.IsNotFound(err) {
			return ordersdomain.ErrOrderNotFound
		}
		return fmt.Errorf("patch order status: %w", err)
	}
	return nil
}

// ListByCustomer fetches one page of a customer's orders across partitions.
func (r *OrdersRepository) ListByCustomer(ctx context.Context, userID string, opts pkgcosmos.ListOptions) (pkgcosmos.Page[models.Order], error) {
	query := "SELECT * FROM c WHERE c.type = 'order' AND c.customer.userId = @uid ORDER BY c.createdAt DESC"
	params := []azcosmos.QueryParameter{{Name: "@uid", Value: userID}}

	page, err := pkgcosmos.QueryPage[models.Order](ctx, r.container, query, params, pkgcosmos.CrossPartition(), opts)
	if err != nil {
		return pkgcosmos.Page[models.Order]{}, fmt.Errorf("list orders by customer: %w", err)
	}
	return page, nil
}

// ListByCatererAndDay fetches one page of order summaries for a caterer's UTC
// day. Projects only the summary fields to keep the page small.
func (r *OrdersRepository) ListByCatererAndDay(ctx context.Context, catererID string, day time.Time, opts pkgcosmos.ListOptions) (pkgcosmos.Page[models.Summary], error) {
	from, to := DayBoundsUTC(day)

	query := `SELECT
    c.orderId AS orderId,
    c.eventDateTime AS eventDateTime,
    c.status AS status,
    c.guestCount AS guestCount,
    c.location.pincode AS pincode,
    c.location.address AS address,
    c.package.name AS packageName
FROM c
WHERE c.type = 'order'
    AND c.catererId = @cid
    AND c.eventDateTime >= @from
    AND c.eventDateTime < @to
ORDER BY c.eventDateTime ASC`

	params := []azcosmos.QueryParameter{
		{Name: "@cid", Value: catererID},
		{Name: "@from", Value: from.Format(time.RFC3339)},
		{Name: "@to", Value: to.Format(time.RFC3339)},
	}

	page, err := pkgcosmos.QueryPage[models.Summary](ctx, r.container, query, params, pkgcosmos.CrossPartition(), opts)
	if err != nil {
		return pkgcosmos.Page[models.Summary]{}, fmt.Errorf("list orders by caterer and day: %w", err)
	}
	return page, nil
}

// DayBoundsUTC truncates t to UTC midnight and returns the half-open
// [midnight, midnight+24h) interval covering that day.
func DayBoundsUTC(t time.Time) (from, to time.Time) {
	u := t.UTC()
	from = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.Add(24 * time.Hour)
}
