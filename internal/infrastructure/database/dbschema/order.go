package dbschema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ordervoice/order-api/internal/domain/order"
	"ordervoice/order-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Order{})
	database.RegisterSchemaForAutoMigrate(OrderItem{})
	database.RegisterSchemaForAutoMigrate(Anomaly{})
	database.RegisterSchemaForAutoMigrate(Quote{})
}

// Order represents the database schema for sales orders
type Order struct {
	BaseModel
	TenantID      uuid.UUID       `gorm:"type:uuid;index:idx_orders_tenant;not null"`
	Tenant        Tenant          `gorm:"foreignKey:TenantID"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;index:idx_orders_customer;not null"`
	Customer      Customer        `gorm:"foreignKey:CustomerID"`
	InteractionID uuid.UUID       `gorm:"type:uuid;index:idx_orders_interaction;not null"`
	Interaction   Interaction     `gorm:"foreignKey:InteractionID"`
	Status        order.Status    `gorm:"type:varchar(20);index:idx_orders_status;not null;default:'DRAFT'"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	Items     []OrderItem `gorm:"foreignKey:OrderID"`
	Anomalies []Anomaly   `gorm:"foreignKey:OrderID"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "order_api.orders"
}

// OrderItem represents the database schema for order lines. UnitPrice is the
// catalog price snapshot taken when the order was built.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;index:idx_order_items_order;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;index:idx_order_items_product;not null"`
	Product   Product         `gorm:"foreignKey:ProductID"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the table name for OrderItem
func (OrderItem) TableName() string {
	return "order_api.order_items"
}

// Anomaly represents the database schema for rule findings against orders
type Anomaly struct {
	BaseModel
	OrderID       uuid.UUID       `gorm:"type:uuid;index:idx_anomalies_order;not null"`
	RuleCode      order.RuleCode  `gorm:"type:varchar(40);index:idx_anomalies_rule;not null"`
	Description   string          `gorm:"type:text;not null"`
	SeverityScore decimal.Decimal `gorm:"type:numeric(4,2);not null"`
	IsResolved    bool            `gorm:"not null;default:false"`
}

// TableName specifies the table name for Anomaly
func (Anomaly) TableName() string {
	return "order_api.anomalies"
}

// Quote represents the database schema for quotes
type Quote struct {
	BaseModel
	OrderID     uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_quotes_order;not null"`
	QuoteAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ValidUntil  time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Quote
func (Quote) TableName() string {
	return "order_api.quotes"
}

// EtoD converts database schema to domain order (Entity to Domain)
func (o *Order) EtoD() *order.Order {
	return &order.Order{
		ID:            o.ID,
		TenantID:      o.TenantID,
		CustomerID:    o.CustomerID,
		InteractionID: o.InteractionID,
		Status:        o.Status,
		TotalAmount:   o.TotalAmount,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// NewSchemaOrder creates a database schema from domain order
func NewSchemaOrder(o *order.Order) *Order {
	return &Order{
		BaseModel: BaseModel{
			ID:        o.ID,
			CreatedAt: o.CreatedAt,
			UpdatedAt: o.UpdatedAt,
		},
		TenantID:      o.TenantID,
		CustomerID:    o.CustomerID,
		InteractionID: o.InteractionID,
		Status:        o.Status,
		TotalAmount:   o.TotalAmount,
	}
}

// EtoD converts database schema to domain order item (Entity to Domain)
func (i *OrderItem) EtoD() *order.OrderItem {
	return &order.OrderItem{
		ID:        i.ID,
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
		CreatedAt: i.CreatedAt,
	}
}

// NewSchemaOrderItem creates a database schema from domain order item
func NewSchemaOrderItem(i *order.OrderItem) *OrderItem {
	return &OrderItem{
		BaseModel: BaseModel{
			ID:        i.ID,
			CreatedAt: i.CreatedAt,
		},
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
	}
}

// EtoD converts database schema to domain anomaly (Entity to Domain)
func (a *Anomaly) EtoD() *order.Anomaly {
	return &order.Anomaly{
		ID:            a.ID,
		OrderID:       a.OrderID,
		RuleCode:      a.RuleCode,
		Description:   a.Description,
		SeverityScore: a.SeverityScore,
		Resolved:      a.IsResolved,
		CreatedAt:     a.CreatedAt,
	}
}

// NewSchemaAnomaly creates a database schema from domain anomaly
func NewSchemaAnomaly(a *order.Anomaly) *Anomaly {
	return &Anomaly{
		BaseModel: BaseModel{
			ID:        a.ID,
			CreatedAt: a.CreatedAt,
		},
		OrderID:       a.OrderID,
		RuleCode:      a.RuleCode,
		Description:   a.Description,
		SeverityScore: a.SeverityScore,
		IsResolved:    a.Resolved,
	}
}

// EtoD converts database schema to domain quote (Entity to Domain)
func (q *Quote) EtoD() *order.Quote {
	return &order.Quote{
		ID:          q.ID,
		OrderID:     q.OrderID,
		QuoteAmount: q.QuoteAmount,
		ValidUntil:  q.ValidUntil,
		CreatedAt:   q.CreatedAt,
	}
}

// NewSchemaQuote creates a database schema from domain quote
func NewSchemaQuote(q *order.Quote) *Quote {
	return &Quote{
		BaseModel: BaseModel{
			ID:        q.ID,
			CreatedAt: q.CreatedAt,
		},
		OrderID:     q.OrderID,
		QuoteAmount: q.QuoteAmount,
		ValidUntil:  q.ValidUntil,
	}
}
