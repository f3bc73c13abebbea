package dbschema

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ordervoice/order-api/internal/domain/catalog"
	"ordervoice/order-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Product{})
}

// Product represents the database schema for catalog products
type Product struct {
	BaseModel
	TenantID uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_products_tenant_sku;not null"`
	Tenant   Tenant          `gorm:"foreignKey:TenantID"`
	Name     string          `gorm:"size:255;not null"`
	SKU      string          `gorm:"size:64;uniqueIndex:idx_products_tenant_sku;not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "order_api.products"
}

// EtoD converts database schema to domain product (Entity to Domain)
func (p *Product) EtoD() *catalog.Product {
	return &catalog.Product{
		ID:        p.ID,
		TenantID:  p.TenantID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewSchemaProduct creates a database schema from domain product
func NewSchemaProduct(p *catalog.Product) *Product {
	return &Product{
		BaseModel: BaseModel{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		},
		TenantID: p.TenantID,
		Name:     p.Name,
		SKU:      p.SKU,
		Price:    p.Price,
	}
}
