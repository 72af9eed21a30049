package repositories

import (
	"context"
	"time"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/services/orders/domain/models"
)

// OrdersRepository is the persistence interface for the Order aggregate.
// The domain layer owns this interface; infrastructure implements it.
type OrdersRepository interface {
	// Get returns the order or ErrOrderNotFound.
	Get(ctx context.Context, orderID string) (*models.Order, error)

	// Create inserts the order as a new document, forcing id == orderId and
	// stamping created/updated timestamps. Returns ErrOrderExists on id
	// collision.
	Create(ctx context.Context, order *models.Order) error

	// UpdateStatus patches only the status and lastUpdatedAt fields.
	// Any status string is accepted. Returns ErrOrderNotFound if absent.
	UpdateStatus(ctx context.Context, orderID, newStatus string) error

	// ListByCustomer returns one page of the customer's orders, newest first.
	// Cross-partition: the container is keyed by orderId, so no
	// single-partition scoping is possible here.
	ListByCustomer(ctx context.Context, userID string, opts cosmos.ListOptions) (cosmos.Page[models.Order], error)

	// ListByCatererAndDay returns one page of order summaries for the
	// caterer whose eventDateTime falls on the given UTC day, earliest
	// first. Any time-of-day component of day is discarded.
	ListByCatererAndDay(ctx context.Context, catererID string, day time.Time, opts cosmos.ListOptions) (cosmos.Page[models.Summary], error)
}
