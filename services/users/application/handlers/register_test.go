package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/naatukodi/catering/pkg/cosmos"
	appsvcs "github.com/naatukodi/catering/services/users/application/services"
	"github.com/naatukodi/catering/services/users/domain/models"
)

type fakeUsersRepo struct {
	lastCreated *models.User
}

func (f *fakeUsersRepo) Get(ctx context.Context, userID string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	f.lastCreated = user
	return user, nil
}

func (f *fakeUsersRepo) Upsert(ctx context.Context, user *models.User) error { return nil }

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUsersRepo) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUsersRepo) ListByRole(ctx context.Context, role string, opts cosmos.ListOptions) (cosmos.Page[models.User], error) {
	return cosmos.Page[models.User]{}, nil
}

func usersServices(repo *fakeUsersRepo) *appsvcs.Services {
	return &appsvcs.Services{Users: appsvcs.NewUsersService(repo)}
}

func TestRegisterHandler(t *testing.T) {
	t.Run("omitted role defaults to Customer", func(t *testing.T) {
		repo := &fakeUsersRepo{}
		h := NewRegisterHandler(usersServices(repo))

		body := `{"name":"Asha","email":"asha@example.com","phone":"9000000001"}`
		rec := httptest.NewRecorder()
		h.Execute(rec, httptest.NewRequest("POST", "/users", strings.NewReader(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if repo.lastCreated == nil {
			t.Fatal("expected a user to be stored")
		}
		if repo.lastCreated.Role != models.RoleCustomer {
			t.Fatalf("expected role %q, got %q", models.RoleCustomer, repo.lastCreated.Role)
		}
	})

	t.Run("explicit role is kept", func(t *testing.T) {
		repo := &fakeUsersRepo{}
		h := NewRegisterHandler(usersServices(repo))

		body := `{"role":"Caterer","catererId":"CAT_1","name":"Ravi","email":"ravi@example.com","phone":"9000000002"}`
		rec := httptest.NewRecorder()
		h.Execute(rec, httptest.NewRequest("POST", "/users", strings.NewReader(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if repo.lastCreated.Role != models.RoleCaterer {
			t.Fatalf("expected role %q, got %q", models.RoleCaterer, repo.lastCreated.Role)
		}
	})

	t.Run("unknown role still rejected", func(t *testing.T) {
		repo := &fakeUsersRepo{}
		h := NewRegisterHandler(usersServices(repo))

		body := `{"role":"Owner","name":"Mal","email":"mal@example.com","phone":"9000000003"}`
		rec := httptest.NewRecorder()
		h.Execute(rec, httptest.NewRequest("POST", "/users", strings.NewReader(body)))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected status 422, got %d", rec.Code)
		}
	})
}
