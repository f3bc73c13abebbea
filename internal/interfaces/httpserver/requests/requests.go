package requests

import "github.com/shopspring/decimal"

// CreateTenantRequest is the payload for tenant creation and rename.
type CreateTenantRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCustomerRequest is the payload for customer creation and update.
type CreateCustomerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// CreateProductRequest is the payload for product creation and update.
type CreateProductRequest struct {
	Name  string          `json:"name" binding:"required"`
	SKU   string          `json:"sku" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

// ProcessTextRequest submits a pre-transcribed communication for processing.
type ProcessTextRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Transcript string `json:"transcript" binding:"required"`
	SourceType string `json:"source_type,omitempty"`
}

// ListQuery carries the shared limit/offset pagination parameters.
type ListQuery struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}
