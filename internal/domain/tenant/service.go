package tenant

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ordervoice/order-api/internal/utils/platformerrors"
)

// Service handles business logic for tenants
type Service struct {
	repo Repository
}

// NewService creates a new tenant service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateTenant creates a tenant after validating its name.
func (s *Service) CreateTenant(ctx context.Context, name string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "tenant name is required", nil)
	}

	t := &Tenant{Name: name}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create tenant")
	}
	return t, nil
}

// GetTenant retrieves a tenant by id.
func (s *Service) GetTenant(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "tenant not found")
	}
	return t, nil
}

// ListTenants returns tenants ordered by creation time, newest first.
func (s *Service) ListTenants(ctx context.Context, limit, offset int) ([]*Tenant, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	tenants, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list tenants")
	}
	return tenants, nil
}

// UpdateTenant renames an existing tenant.
func (s *Service) UpdateTenant(ctx context.Context, id uuid.UUID, name string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "tenant name is required", nil)
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "tenant not found")
	}
	t.Name = name
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update tenant")
	}
	return t, nil
}

// DeleteTenant removes a tenant. Deleting an unknown tenant is a not-found
// error, not a no-op.
func (s *Service) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "tenant not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete tenant")
	}
	return nil
}
