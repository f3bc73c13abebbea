package productroute

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ordervoice/order-api/internal/interfaces/httpserver/handlers/producthandler"
	"ordervoice/order-api/internal/interfaces/httpserver/middlewares"
	"ordervoice/order-api/internal/interfaces/httpserver/requests"
	"ordervoice/order-api/internal/interfaces/httpserver/responses"
	"ordervoice/order-api/internal/utils/platformerrors"
)

type ProductRoute struct {
	handler *producthandler.ProductHandler
}

func NewProductRoute(handler *producthandler.ProductHandler) *ProductRoute {
	return &ProductRoute{handler: handler}
}

// RegisterRoutes registers product catalog routes under the tenant-scoped group.
func (r *ProductRoute) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.POST("", r.createProduct)
	products.GET("", r.listProducts)
	products.GET("/:product_id", r.getProduct)
	products.PUT("/:product_id", r.updateProduct)
	products.DELETE("/:product_id", r.deleteProduct)
}

func (r *ProductRoute) createProduct(reqCtx *gin.Context) {
	tenantID, ok := middlewares.TenantFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant scope is required")
		return
	}

	var req requests.CreateProductRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body")
		return
	}

	result, err := r.handler.CreateProduct(reqCtx.Request.Context(), tenantID, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to create product")
		return
	}
	reqCtx.JSON(http.StatusCreated, result)
}

func (r *ProductRoute) listProducts(reqCtx *gin.Context) {
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

	result, err := r.handler.ListProducts(reqCtx.Request.Context(), tenantID, query.Limit, query.Offset)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to list products")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

func (r *ProductRoute) getProduct(reqCtx *gin.Context) {
	tenantID, ok := middlewares.TenantFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant scope is required")
		return
	}

	id, err := uuid.Parse(reqCtx.Param("product_id"))
	if err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "product_id must be a valid UUID")
		return
	}

	result, err := r.handler.GetProduct(reqCtx.Request.Context(), tenantID, id)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to get product")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

func (r *ProductRoute) updateProduct(reqCtx *gin.Context) {
	tenantID, ok := middlewares.TenantFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant scope is required")
		return
	}

	id, err := uuid.Parse(reqCtx.Param("product_id"))
	if err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "product_id must be a valid UUID")
		return
	}

	var req requests.CreateProductRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body")
		return
	}

	result, err := r.handler.UpdateProduct(reqCtx.Request.Context(), tenantID, id, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to update product")
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

func (r *ProductRoute) deleteProduct(reqCtx *gin.Context) {
	tenantID, ok := middlewares.TenantFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant scope is required")
		return
	}

	id, err := uuid.Parse(reqCtx.Param("product_id"))
	if err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "product_id must be a valid UUID")
		return
	}

	if err := r.handler.DeleteProduct(reqCtx.Request.Context(), tenantID, id); err != nil {
		responses.HandleError(reqCtx, err, "Failed to delete product")
		return
	}
	reqCtx.Status(http.StatusNoContent)
}
