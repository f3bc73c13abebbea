package tenantroute

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ordervoice/order-api/internal/interfaces/httpserver/handlers/tenanthandler"
	"ordervoice/order-api/internal/interfaces/httpserver/requests"
	"ordervoice/order-api/internal/interfaces/httpserver/responses"
	"ordervoice/order-api/internal/utils/platformerrors"
)

type TenantRoute struct {
	handler *tenanthandler.TenantHandler
}

func NewTenantRoute(handler *tenanthandler.TenantHandler) *TenantRoute {
	return &TenantRoute{handler: handler}
}

// RegisterRoutes registers tenant routes. Tenant management is not scoped
// by the X-Tenant-ID header; it administers the tenants themselves.
func (r *TenantRoute) RegisterRoutes(rg *gin.RouterGroup) {
	tenants := rg.Group("/tenants")
	tenants.POST("", r.createTenant)
	tenants.GET("", r.listTenants)
	tenants.GET("/:tenant_id", r.getTenant)
	tenants.PUT("/:tenant_id", r.updateTenant)
	tenants.DELETE("/:tenant_id", r.deleteTenant)
}

func (r *TenantRoute) createTenant(reqCtx *gin.Context) {
	var req requests.CreateTenantRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body")
		return
	}

	result, err := r.handler.CreateTenant(reqCtx.Request.Context(), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to create tenant")
		return
	}
	reqCtx.JSON(http.StatusCreated, result)
}

func (r *TenantRoute) listTenants(reqCtx *gin.Context) {
	var query requests.ListQuery
	if err := reqCtx.ShouldBindQuery(&query); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid query parameters")
		return
	}

	result, err := r.handler.ListTenants(reqCtx.Request.Context(), query.Limit, query.Offset)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to list tenants")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

func (r *TenantRoute) getTenant(reqCtx *gin.Context) {
	id, err := uuid.Parse(reqCtx.Param("tenant_id"))
	if err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant_id must be a valid UUID")
		return
	}

	result, err := r.handler.GetTenant(reqCtx.Request.Context(), id)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to get tenant")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

func (r *TenantRoute) updateTenant(reqCtx *gin.Context) {
	id, err := uuid.Parse(reqCtx.Param("tenant_id"))
	if err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant_id must be a valid UUID")
		return
	}

	var req requests.CreateTenantRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body")
		return
	}

	result, err := r.handler.UpdateTenant(reqCtx.Request.Context(), id, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to update tenant")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

func (r *TenantRoute) deleteTenant(reqCtx *gin.Context) {
	id, err := uuid.Parse(reqCtx.Param("tenant_id"))
	if err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant_id must be a valid UUID")
		return
	}

	if err := r.handler.DeleteTenant(reqCtx.Request.Context(), id); err != nil {
		responses.HandleError(reqCtx, err, "Failed to delete tenant")
		return
	}
	reqCtx.Status(http.StatusNoContent)
}
