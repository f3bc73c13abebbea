package customerroute

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ordervoice/order-api/internal/interfaces/httpserver/handlers/customerhandler"
	"ordervoice/order-api/internal/interfaces/httpserver/middlewares"
	"ordervoice/order-api/internal/interfaces/httpserver/requests"
	"ordervoice/order-api/internal/interfaces/httpserver/responses"
	"ordervoice/order-api/internal/utils/platformerrors"
)

type CustomerRoute struct {
	handler *customerhandler.CustomerHandler
}

func NewCustomerRoute(handler *customerhandler.CustomerHandler) *CustomerRoute {
	return &CustomerRoute{handler: handler}
}

// RegisterRoutes registers customer routes under the tenant-scoped group.
func (r *CustomerRoute) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.POST("", r.createCustomer)
	customers.GET("", r.listCustomers)
	customers.GET("/:customer_id", r.getCustomer)
	customers.PUT("/:customer_id", r.updateCustomer)
	customers.DELETE("/:customer_id", r.deleteCustomer)
}

func (r *CustomerRoute) createCustomer(reqCtx *gin.Context) {
	tenantID, ok := middlewares.TenantFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant scope is required")
		return
	}

	var req requests.CreateCustomerRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body")
		return
	}

	result, err := r.handler.CreateCustomer(reqCtx.Request.Context(), tenantID, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to create customer")
		return
	}
	reqCtx.JSON(http.StatusCreated, result)
}

func (r *CustomerRoute) listCustomers(reqCtx *gin.Context) {
	tenantID, ok := middlewares.TenantFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant scope is required")
		return
	}

	var query requests.ListQuery
	if err := reqCtx.ShouldBindQuery(&query); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid query parameters")
		return
	}

	result, err := r.handler.ListCustomers(reqCtx.Request.Context(), tenantID, query.Limit, query.Offset)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to list customers")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

func (r *CustomerRoute) getCustomer(reqCtx *gin.Context) {
	tenantID, ok := middlewares.TenantFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant scope is required")
		return
	}

	id, err := uuid.Parse(reqCtx.Param("customer_id"))
	if err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "customer_id must be a valid UUID")
		return
	}

	result, err := r.handler.GetCustomer(reqCtx.Request.Context(), tenantID, id)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to get customer")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

func (r *CustomerRoute) updateCustomer(reqCtx *gin.Context) {
	tenantID, ok := middlewares.TenantFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant scope is required")
		return
	}

	id, err := uuid.Parse(reqCtx.Param("customer_id"))
	if err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "customer_id must be a valid UUID")
		return
	}

	var req requests.CreateCustomerRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body")
		return
	}

	result, err := r.handler.UpdateCustomer(reqCtx.Request.Context(), tenantID, id, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to update customer")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

func (r *CustomerRoute) deleteCustomer(reqCtx *gin.Context) {
	tenantID, ok := middlewares.TenantFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant scope is required")
		return
	}

	id, err := uuid.Parse(reqCtx.Param("customer_id"))
	if err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "customer_id must be a valid UUID")
		return
	}

	if err := r.handler.DeleteCustomer(reqCtx.Request.Context(), tenantID, id); err != nil {
		responses.HandleError(reqCtx, err, "Failed to delete customer")
		return
	}
	reqCtx.Status(http.StatusNoContent)
}
