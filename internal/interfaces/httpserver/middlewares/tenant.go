package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ordervoice/order-api/internal/domain/tenant"
	"ordervoice/order-api/internal/utils/platformerrors"
)

const tenantIDHeader = "X-Tenant-ID"
const tenantContextKey = "tenant_id"

// TenantMiddleware resolves the calling tenant from the X-Tenant-ID header
// and rejects requests whose tenant does not exist. Resolved identity is
// stored in the gin context for handlers.
func TenantMiddleware(tenants *tenant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(tenantIDHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
			return
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID must be a valid UUID"})
			return
		}

		if _, err := tenants.GetTenant(c.Request.Context(), tenantID); err != nil {
			if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve tenant"})
			return
		}

		c.Set(tenantContextKey, tenantID)
		c.Next()
	}
}

// TenantFromContext returns the tenant id resolved by TenantMiddleware.
func TenantFromContext(c *gin.Context) (uuid.UUID, bool) {
	val, ok := c.Get(tenantContextKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}
