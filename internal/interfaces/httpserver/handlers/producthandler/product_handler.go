package producthandler

import (
	"context"

	"github.com/google/uuid"

	"ordervoice/order-api/internal/domain/catalog"
	"ordervoice/order-api/internal/interfaces/httpserver/requests"
)

type ProductHandler struct {
	catalogService *catalog.Service
}

func NewProductHandler(catalogService *catalog.Service) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// CreateProduct adds a product to the tenant's catalog
func (h *ProductHandler) CreateProduct(ctx context.Context, tenantID uuid.UUID, req requests.CreateProductRequest) (*catalog.Product, error) {
	return h.catalogService.CreateProduct(ctx, tenantID, catalog.CreateInput{
		Name:  req.Name,
		SKU:   req.SKU,
		Price: req.Price,
	})
}

// GetProduct retrieves a single product within the tenant
func (h *ProductHandler) GetProduct(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	return h.catalogService.GetProduct(ctx, tenantID, id)
}

// ListProducts lists the tenant's catalog
func (h *ProductHandler) ListProducts(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*catalog.Product, error) {
	return h.catalogService.ListProducts(ctx, tenantID, limit, offset)
}

// UpdateProduct updates a product's name, SKU or price
func (h *ProductHandler) UpdateProduct(ctx context.Context, tenantID, id uuid.UUID, req requests.CreateProductRequest) (*catalog.Product, error) {
	return h.catalogService.UpdateProduct(ctx, tenantID, id, catalog.CreateInput{
		Name:  req.Name,
		SKU:   req.SKU,
		Price: req.Price,
	})
}

// DeleteProduct removes a product from the tenant's catalog
func (h *ProductHandler) DeleteProduct(ctx context.Context, tenantID, id uuid.UUID) error {
	return h.catalogService.DeleteProduct(ctx, tenantID, id)
}
