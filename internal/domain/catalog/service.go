package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ordervoice/order-api/internal/utils/platformerrors"
)

// Service handles business logic for the product catalog
type Service struct {
	repo Repository
}

// NewService creates a new catalog service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the fields accepted when creating or updating a product.
type CreateInput struct {
	Name  string
	SKU   string
	Price decimal.Decimal
}

func (in *CreateInput) validate(ctx context.Context) error {
	if strings.TrimSpace(in.Name) == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "product name is required", nil)
	}
	if strings.TrimSpace(in.SKU) == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "product SKU is required", nil)
	}
	if in.Price.IsNegative() {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "product price must not be negative", nil)
	}
	return nil
}

// CreateProduct creates a product, rejecting duplicate SKUs within the tenant.
func (s *Service) CreateProduct(ctx context.Context, tenantID uuid.UUID, input CreateInput) (*Product, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	sku := strings.TrimSpace(input.SKU)
	if existing, err := s.repo.FindBySKU(ctx, tenantID, sku); err == nil && existing != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
			fmt.Sprintf("product with SKU %q already exists for this tenant", sku), nil)
	}

	p := &Product{
		TenantID: tenantID,
		Name:     strings.TrimSpace(input.Name),
		SKU:      sku,
		Price:    input.Price,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create product")
	}
	return p, nil
}

// GetProduct retrieves a product by id within the tenant scope.
func (s *Service) GetProduct(ctx context.Context, tenantID, id uuid.UUID) (*Product, error) {
	p, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "product not found")
	}
	return p, nil
}

// ListProducts returns the tenant's products, newest first.
func (s *Service) ListProducts(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	products, err := s.repo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list products")
	}
	return products, nil
}

// UpdateProduct applies the input to an existing product.
func (s *Service) UpdateProduct(ctx context.Context, tenantID, id uuid.UUID, input CreateInput) (*Product, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "product not found")
	}

	sku := strings.TrimSpace(input.SKU)
	if sku != p.SKU {
		if existing, err := s.repo.FindBySKU(ctx, tenantID, sku); err == nil && existing != nil {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
				fmt.Sprintf("product with SKU %q already exists for this tenant", sku), nil)
		}
	}

	p.Name = strings.TrimSpace(input.Name)
	p.SKU = sku
	p.Price = input.Price
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update product")
	}
	return p, nil
}

// DeleteProduct removes a product within the tenant scope. Deleting an
// unknown product is a not-found error, not a no-op.
func (s *Service) DeleteProduct(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, tenantID, id); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "product not found")
	}
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete product")
	}
	return nil
}
