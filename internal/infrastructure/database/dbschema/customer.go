package dbschema

import (
	"github.com/google/uuid"

	"ordervoice/order-api/internal/domain/customer"
	"ordervoice/order-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Customer{})
}

// Customer represents the database schema for customers
type Customer struct {
	BaseModel
	TenantID uuid.UUID `gorm:"type:uuid;index:idx_customers_tenant;not null"`
	Tenant   Tenant    `gorm:"foreignKey:TenantID"`
	Name     string    `gorm:"size:255;not null"`
	Email    *string   `gorm:"size:255"`
	Phone    *string   `gorm:"size:64"`
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "order_api.customers"
}

// EtoD converts database schema to domain customer (Entity to Domain)
func (c *Customer) EtoD() *customer.Customer {
	return &customer.Customer{
		ID:        c.ID,
		TenantID:  c.TenantID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewSchemaCustomer creates a database schema from domain customer
func NewSchemaCustomer(c *customer.Customer) *Customer {
	return &Customer{
		BaseModel: BaseModel{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		},
		TenantID: c.TenantID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
	}
}
