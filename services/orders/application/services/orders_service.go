package services

import (
	"context"
	"fmt"
	"time"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/services/orders/domain/models"
	"github.com/naatukodi/catering/services/orders/domain/repositories"
)

// OrdersService orchestrates order creation, lookup, and status changes.
type OrdersService struct {
	repo repositories.OrdersRepository
}

// NewOrdersService returns an OrdersService wired with the given repository.
func NewOrdersService(repo repositories.OrdersRepository) *OrdersService {
	return &OrdersService{repo: repo}
}

// Get retrieves one order by id.
func (s *OrdersService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// Create assigns a generated order id, defaults the status to Pending, and
// persists the order. Returns the stored order with its id.
func (s *OrdersService) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	id := models.NewOrderID()
	order.ID = id
	order.OrderID = id
	order.Status = models.StatusPending

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// UpdateStatus patches the order's status. No transition validation is
// performed: any status string is accepted, matching the storage contract.
func (s *OrdersService) UpdateStatus(ctx context.Context, orderID, newStatus string) error {
	if err := s.repo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// ListByCustomer returns one page of the customer's orders.
func (s *OrdersService) ListByCustomer(ctx context.Context, userID string, opts cosmos.ListOptions) (cosmos.Page[models.Order], error) {
	page, err := s.repo.ListByCustomer(ctx, userID, opts)
	if err != nil {
		return cosmos.Page[models.Order]{}, fmt.Errorf("list orders by customer: %w", err)
	}
	return page, nil
}

// ListByCatererAndDay returns one page of order summaries for the caterer's
// UTC day.
func (s *OrdersService) ListByCatererAndDay(ctx context.Context, catererID string, day time.Time, opts cosmos.ListOptions) (cosmos.Page[models.Summary], error) {
	page, err := s.repo.ListByCatererAndDay(ctx, catererID, day, opts)
	if err != nil {
		return cosmos.Page[models.Summary]{}, fmt.Errorf("list orders by caterer and day: %w", err)
	}
	return page, nil
}
