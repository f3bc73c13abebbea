package customer

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Customer is a buyer belonging to a tenant. Interactions and orders
// reference customers by id.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository persists customers within a tenant scope.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error)
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
