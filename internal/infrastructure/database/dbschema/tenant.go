package dbschema

import (
	"ordervoice/order-api/internal/domain/tenant"
	"ordervoice/order-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Tenant{})
}

// Tenant represents the database schema for tenants
type Tenant struct {
	BaseModel
	Name string `gorm:"size:255;not null"`
}

// TableName specifies the table name for Tenant
func (Tenant) TableName() string {
	return "order_api.tenants"
}

// EtoD converts database schema to domain tenant (Entity to Domain)
func (t *Tenant) EtoD() *tenant.Tenant {
	return &tenant.Tenant{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// NewSchemaTenant creates a database schema from domain tenant
func NewSchemaTenant(t *tenant.Tenant) *Tenant {
	return &Tenant{
		BaseModel: BaseModel{
			ID:        t.ID,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		},
		Name: t.Name,
	}
}
