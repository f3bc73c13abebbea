package tenanthandler

import (
	"context"

	"github.com/google/uuid"

	"ordervoice/order-api/internal/domain/tenant"
	"ordervoice/order-api/internal/interfaces/httpserver/requests"
)

type TenantHandler struct {
	tenantService *tenant.Service
}

func NewTenantHandler(tenantService *tenant.Service) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// CreateTenant creates a new tenant
func (h *TenantHandler) CreateTenant(ctx context.Context, req requests.CreateTenantRequest) (*tenant.Tenant, error) {
	return h.tenantService.CreateTenant(ctx, req.Name)
}

// GetTenant retrieves a single tenant
func (h *TenantHandler) GetTenant(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	return h.tenantService.GetTenant(ctx, id)
}

// ListTenants lists tenants
func (h *TenantHandler) ListTenants(ctx context.Context, limit, offset int) ([]*tenant.Tenant, error) {
	return h.tenantService.ListTenants(ctx, limit, offset)
}

// UpdateTenant renames a tenant
func (h *TenantHandler) UpdateTenant(ctx context.Context, id uuid.UUID, req requests.CreateTenantRequest) (*tenant.Tenant, error) {
	return h.tenantService.UpdateTenant(ctx, id, req.Name)
}

// DeleteTenant removes a tenant
func (h *TenantHandler) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	return h.tenantService.DeleteTenant(ctx, id)
}
