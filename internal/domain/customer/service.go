package customer

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ordervoice/order-api/internal/utils/platformerrors"
)

// Service handles business logic for customers
type Service struct {
	repo Repository
}

// NewService creates a new customer service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the fields accepted when creating a customer.
type CreateInput struct {
	Name  string
	Email *string
	Phone *string
}

// CreateCustomer creates a customer under the given tenant.
func (s *Service) CreateCustomer(ctx context.Context, tenantID uuid.UUID, input CreateInput) (*Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "customer name is required", nil)
	}

	c := &Customer{
		TenantID: tenantID,
		Name:     name,
		Email:    input.Email,
		Phone:    input.Phone,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create customer")
	}
	return c, nil
}

// GetCustomer retrieves a customer by id within the tenant scope.
func (s *Service) GetCustomer(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error) {
	c, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "customer not found")
	}
	return c, nil
}

// ListCustomers returns the tenant's customers, newest first.
func (s *Service) ListCustomers(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*Customer, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	customers, err := s.repo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list customers")
	}
	return customers, nil
}

// UpdateCustomer applies the input to an existing customer.
func (s *Service) UpdateCustomer(ctx context.Context, tenantID, id uuid.UUID, input CreateInput) (*Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "customer name is required", nil)
	}

	c, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "customer not found")
	}
	c.Name = name
	c.Email = input.Email
	c.Phone = input.Phone
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update customer")
	}
	return c, nil
}

// DeleteCustomer removes a customer within the tenant scope. Deleting an
// unknown customer is a not-found error, not a no-op.
func (s *Service) DeleteCustomer(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, tenantID, id); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "customer not found")
	}
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete customer")
	}
	return nil
}
