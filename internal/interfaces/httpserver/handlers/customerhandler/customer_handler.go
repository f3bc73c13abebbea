package customerhandler

import (
	"context"

	"github.com/google/uuid"

	"ordervoice/order-api/internal/domain/customer"
	"ordervoice/order-api/internal/interfaces/httpserver/requests"
)

type CustomerHandler struct {
	customerService *customer.Service
}

func NewCustomerHandler(customerService *customer.Service) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomer creates a customer under the tenant
func (h *CustomerHandler) CreateCustomer(ctx context.Context, tenantID uuid.UUID, req requests.CreateCustomerRequest) (*customer.Customer, error) {
	return h.customerService.CreateCustomer(ctx, tenantID, customer.CreateInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
}

// GetCustomer retrieves a single customer within the tenant
func (h *CustomerHandler) GetCustomer(ctx context.Context, tenantID, id uuid.UUID) (*customer.Customer, error) {
	return h.customerService.GetCustomer(ctx, tenantID, id)
}

// ListCustomers lists the tenant's customers
func (h *CustomerHandler) ListCustomers(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*customer.Customer, error) {
	return h.customerService.ListCustomers(ctx, tenantID, limit, offset)
}

// UpdateCustomer updates a customer's contact details
func (h *CustomerHandler) UpdateCustomer(ctx context.Context, tenantID, id uuid.UUID, req requests.CreateCustomerRequest) (*customer.Customer, error) {
	return h.customerService.UpdateCustomer(ctx, tenantID, id, customer.CreateInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
}

// DeleteCustomer removes a customer within the tenant
func (h *CustomerHandler) DeleteCustomer(ctx context.Context, tenantID, id uuid.UUID) error {
	return h.customerService.DeleteCustomer(ctx, tenantID, id)
}
