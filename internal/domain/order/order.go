package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusFlagged   Status = "FLAGGED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// RuleCode tags an anomaly with the rule that produced it.
type RuleCode string

const (
	RuleUnknownSKU       RuleCode = "UNKNOWN_SKU"
	RuleUnusualVolume    RuleCode = "UNUSUAL_VOLUME"
	RuleZeroPrice        RuleCode = "ZERO_PRICE"
	RuleInvalidQuantity  RuleCode = "INVALID_QUANTITY"
	RuleDuplicateProduct RuleCode = "DUPLICATE_PRODUCT"
	RuleHighOrderValue   RuleCode = "HIGH_ORDER_VALUE"
)

// Order is a sales order derived from one interaction. TotalAmount always
// equals the sum of unit_price * quantity over its items.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	InteractionID uuid.UUID       `json:"interaction_id"`
	Status        Status          `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderItem is one resolved line of an order. UnitPrice is a snapshot taken
// at order time, not a live reference to the catalog price.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
}

// Anomaly is a recorded rule finding against an order. Anomalies are data,
// never errors: they flag the order for review without failing the pipeline.
type Anomaly struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	RuleCode      RuleCode        `json:"rule_code"`
	Description   string          `json:"description"`
	SeverityScore decimal.Decimal `json:"severity_score"`
	Resolved      bool            `json:"is_resolved"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Quote is a time-bounded offer derived from a finalized order. Immutable
// once created; QuoteAmount is the order total at generation time.
type Quote struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	QuoteAmount decimal.Decimal `json:"quote_amount"`
	ValidUntil  time.Time       `json:"valid_until"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RequestedLine is one extracted {sku, quantity} pair before catalog
// resolution.
type RequestedLine struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"qty"`
}

// Repository persists orders and their dependent records. All writes join
// the transaction carried by ctx; Create calls assign identity so dependent
// records can reference the new row before commit.
type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	UpdateOrder(ctx context.Context, o *Order) error
	CreateItems(ctx context.Context, items []*OrderItem) error
	CreateAnomalies(ctx context.Context, anomalies []*Anomaly) error
	CreateQuote(ctx context.Context, q *Quote) error
	// CountExpiredQuotes reports how many quotes have passed their validity
	// window as of the given instant.
	CountExpiredQuotes(ctx context.Context, asOf time.Time) (int64, error)
}
