package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/naatukodi/catering/pkg/cosmos"
	ordersdomain "github.com/naatukodi/catering/services/orders/domain"
	"github.com/naatukodi/catering/services/orders/domain/models"
)

type fakeOrdersRepo struct {
	orders map[string]*models.Order

	createErr error

	lastStatusID string
	lastStatus   string
}

func newFakeOrdersRepo() *fakeOrdersRepo {
	return &fakeOrdersRepo{orders: make(map[string]*models.Order)}
}

func (f *fakeOrdersRepo) Get(ctx context.Context, orderID string) (*models.Order, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, ordersdomain.ErrOrderNotFound
	}
	return order, nil
}

func (f *fakeOrdersRepo) Create(ctx context.Context, order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orders[order.OrderID] = order
	return nil
}

func (f *fakeOrdersRepo) UpdateStatus(ctx context.Context, orderID, newStatus string) error {
	if _, ok := f.orders[orderID]; !ok {
		return ordersdomain.ErrOrderNotFound
	}
	f.lastStatusID = orderID
	f.lastStatus = newStatus
	return nil
}

func (f *fakeOrdersRepo) ListByCustomer(ctx context.Context, userID string, opts cosmos.ListOptions) (cosmos.Page[models.Order], error) {
	return cosmos.Page[models.Order]{}, nil
}

func (f *fakeOrdersRepo) ListByCatererAndDay(ctx context.Context, catererID string, day time.Time, opts cosmos.ListOptions) (cosmos.Page[models.Summary], error) {
	return cosmos.Page[models.Summary]{}, nil
}

func TestOrdersServiceCreate(t *testing.T) {
	t.Run("assigns a generated ORD_ id", func(t *testing.T) {
		repo := newFakeOrdersRepo()
		svc := NewOrdersService(repo)

		created, err := svc.Create(context.Background(), &models.Order{CatererID: "CAT_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(created.OrderID, "ORD_") {
			t.Fatalf("expected ORD_ prefix, got %q", created.OrderID)
		}
	})

	t.Run("id mirrors orderId", func(t *testing.T) {
		repo := newFakeOrdersRepo()
		svc := NewOrdersService(repo)

		created, err := svc.Create(context.Background(), &models.Order{CatererID: "CAT_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != created.OrderID {
			t.Fatalf("expected id == orderId, got %q != %q", created.ID, created.OrderID)
		}
	})

	t.Run("defaults status to Pending", func(t *testing.T) {
		repo := newFakeOrdersRepo()
		svc := NewOrdersService(repo)

		created, err := svc.Create(context.Background(), &models.Order{CatererID: "CAT_1", Status: "whatever"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != models.StatusPending {
			t.Fatalf("expected status %q, got %q", models.StatusPending, created.Status)
		}
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := newFakeOrdersRepo()
		repo.createErr = errors.New("store down")
		svc := NewOrdersService(repo)

		if _, err := svc.Create(context.Background(), &models.Order{CatererID: "CAT_1"}); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestOrdersServiceUpdateStatus(t *testing.T) {
	t.Run("passes any status string through unvalidated", func(t *testing.T) {
		repo := newFakeOrdersRepo()
		repo.orders["ORD_1"] = &models.Order{OrderID: "ORD_1", Status: models.StatusPending}
		svc := NewOrdersService(repo)

		if err := svc.UpdateStatus(context.Background(), "ORD_1", "SomethingCustom"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.lastStatusID != "ORD_1" || repo.lastStatus != "SomethingCustom" {
			t.Fatalf("expected status passthrough, got %q/%q", repo.lastStatusID, repo.lastStatus)
		}
	})

	t.Run("wraps not-found so errors.Is still matches", func(t *testing.T) {
		repo := newFakeOrdersRepo()
		svc := NewOrdersService(repo)

		err := svc.UpdateStatus(context.Background(), "ORD_missing", "Accepted")
		if !errors.Is(err, ordersdomain.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrdersServiceGet(t *testing.T) {
	t.Run("returns the stored order", func(t *testing.T) {
		repo := newFakeOrdersRepo()
		repo.orders["ORD_1"] = &models.Order{OrderID: "ORD_1", CatererID: "CAT_1"}
		svc := NewOrdersService(repo)

		order, err := svc.Get(context.Background(), "ORD_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.CatererID != "CAT_1" {
			t.Fatalf("expected caterer CAT_1, got %q", order.CatererID)
		}
	})

	t.Run("wraps not-found so errors.Is still matches", func(t *testing.T) {
		repo := newFakeOrdersRepo()
		svc := NewOrdersService(repo)

		_, err := svc.Get(context.Background(), "ORD_missing")
		if !errors.Is(err, ordersdomain.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
