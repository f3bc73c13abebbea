package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Tenant represents one customer organization of the platform. Every other
// aggregate is scoped to a tenant.
type Tenant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository persists tenants.
type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	List(ctx context.Context, limit, offset int) ([]*Tenant, error)
	Update(ctx context.Context, t *Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
}
