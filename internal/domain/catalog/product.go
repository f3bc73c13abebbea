package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. SKUs are unique per tenant and the unit price
// is the live list price; orders snapshot it at build time.
type Product struct {
	ID        uuid.UUID       `json:"id"`
	TenantID  uuid.UUID       `json:"tenant_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Repository persists products within a tenant scope.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*Product, error)
	// FindBySKUs performs one batched lookup. SKUs absent from the tenant's
	// catalog are simply absent from the result.
	FindBySKUs(ctx context.Context, tenantID uuid.UUID, skus []string) ([]*Product, error)
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
