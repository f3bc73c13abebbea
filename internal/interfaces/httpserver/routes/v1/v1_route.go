package v1

import (
	"github.com/gin-gonic/gin"

	"ordervoice/order-api/internal/domain/tenant"
	"ordervoice/order-api/internal/interfaces/httpserver/middlewares"
	"ordervoice/order-api/internal/interfaces/httpserver/routes/v1/customerroute"
	"ordervoice/order-api/internal/interfaces/httpserver/routes/v1/interactionroute"
	"ordervoice/order-api/internal/interfaces/httpserver/routes/v1/productroute"
	"ordervoice/order-api/internal/interfaces/httpserver/routes/v1/tenantroute"
)

type V1Route struct {
	tenant        *tenantroute.TenantRoute
	customer      *customerroute.CustomerRoute
	product       *productroute.ProductRoute
	interaction   *interactionroute.InteractionRoute
	tenantService *tenant.Service
}

func NewV1Route(
	tenantRoute *tenantroute.TenantRoute,
	customerRoute *customerroute.CustomerRoute,
	productRoute *productroute.ProductRoute,
	interactionRoute *interactionroute.InteractionRoute,
	tenantService *tenant.Service,
) *V1Route {
	return &V1Route{
		tenant:        tenantRoute,
		customer:      customerRoute,
		product:       productRoute,
		interaction:   interactionRoute,
		tenantService: tenantService,
	}
}

// RegisterRouter mounts all v1 routes. Tenant administration is open at the
// group root; everything else requires a resolved X-Tenant-ID.
func (route *V1Route) RegisterRouter(router *gin.RouterGroup) {
	v1 := router.Group("/v1")

	route.tenant.RegisterRoutes(v1)

	scoped := v1.Group("/")
	scoped.Use(middlewares.TenantMiddleware(route.tenantService))
	route.customer.RegisterRoutes(scoped)
	route.product.RegisterRoutes(scoped)
	route.interaction.RegisterRoutes(scoped)
}
