package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ordervoice/order-api/internal/utils/platformerrors"
)

// fakeRepo implements Repository over an in-memory, tenant-scoped map.
type fakeRepo struct {
	products map[uuid.UUID]*Product
	deleted  []uuid.UUID
}

func newFakeRepo(products ...*Product) *fakeRepo {
	repo := &fakeRepo{products: map[uuid.UUID]*Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeRepo) Create(ctx context.Context, p *Product) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Product, error) {
	p, ok := f.products[id]
	if !ok || p.TenantID != tenantID {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "product not found", nil)
	}
	return p, nil
}

func (f *fakeRepo) FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*Product, error) {
	for _, p := range f.products {
		if p.TenantID == tenantID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "product not found", nil)
}

func (f *fakeRepo) FindBySKUs(ctx context.Context, tenantID uuid.UUID, skus []string) ([]*Product, error) {
	var found []*Product
	for _, p := range f.products {
		for _, sku := range skus {
			if p.TenantID == tenantID && p.SKU == sku {
				found = append(found, p)
			}
		}
	}
	return found, nil
}

func (f *fakeRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*Product, error) {
	var result []*Product
	for _, p := range f.products {
		if p.TenantID == tenantID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeRepo) Update(ctx context.Context, p *Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestDeleteProductRemovesExisting(t *testing.T) {
	tenantID := uuid.New()
	id := uuid.New()
	repo := newFakeRepo(&Product{ID: id, TenantID: tenantID, Name: "Widget", SKU: "WIDGET-1", Price: decimal.NewFromInt(10)})
	svc := NewService(repo)

	if err := svc.DeleteProduct(context.Background(), tenantID, id); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != id {
		t.Errorf("deleted ids = %v, want [%s]", repo.deleted, id)
	}
}

func TestDeleteProductUnknownIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	err := svc.DeleteProduct(context.Background(), uuid.New(), uuid.New())
	if err == nil {
		t.Fatal("expected an error deleting an unknown product")
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("got error type %v, want not-found", platformerrors.GetErrorType(err))
	}
	if len(repo.deleted) != 0 {
		t.Errorf("repository Delete called for an unknown product")
	}
}
