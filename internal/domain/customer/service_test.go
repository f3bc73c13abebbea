package customer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"ordervoice/order-api/internal/utils/platformerrors"
)

// fakeRepo implements Repository over an in-memory, tenant-scoped map.
type fakeRepo struct {
	customers map[uuid.UUID]*Customer
	deleted   []uuid.UUID
}

func newFakeRepo(customers ...*Customer) *fakeRepo {
	repo := &fakeRepo{customers: map[uuid.UUID]*Customer{}}
	for _, c := range customers {
		repo.customers[c.ID] = c
	}
	return repo
}

func (f *fakeRepo) Create(ctx context.Context, c *Customer) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	f.customers[c.ID] = c
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error) {
	c, ok := f.customers[id]
	if !ok || c.TenantID != tenantID {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "customer not found", nil)
	}
	return c, nil
}

func (f *fakeRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*Customer, error) {
	var result []*Customer
	for _, c := range f.customers {
		if c.TenantID == tenantID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeRepo) Update(ctx context.Context, c *Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	delete(f.customers, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestDeleteCustomerRemovesExisting(t *testing.T) {
	tenantID := uuid.New()
	id := uuid.New()
	repo := newFakeRepo(&Customer{ID: id, TenantID: tenantID, Name: "Dana"})
	svc := NewService(repo)

	if err := svc.DeleteCustomer(context.Background(), tenantID, id); err != nil {
		t.Fatalf("DeleteCustomer failed: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != id {
		t.Errorf("deleted ids = %v, want [%s]", repo.deleted, id)
	}
}

func TestDeleteCustomerUnknownIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	err := svc.DeleteCustomer(context.Background(), uuid.New(), uuid.New())
	if err == nil {
		t.Fatal("expected an error deleting an unknown customer")
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("got error type %v, want not-found", platformerrors.GetErrorType(err))
	}
	if len(repo.deleted) != 0 {
		t.Errorf("repository Delete called for an unknown customer")
	}
}

func TestDeleteCustomerWrongTenantIsNotFound(t *testing.T) {
	id := uuid.New()
	repo := newFakeRepo(&Customer{ID: id, TenantID: uuid.New(), Name: "Dana"})
	svc := NewService(repo)

	err := svc.DeleteCustomer(context.Background(), uuid.New(), id)
	if err == nil {
		t.Fatal("expected an error deleting across tenants")
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("got error type %v, want not-found", platformerrors.GetErrorType(err))
	}
	if len(repo.deleted) != 0 {
		t.Errorf("repository Delete called across tenants")
	}
}
