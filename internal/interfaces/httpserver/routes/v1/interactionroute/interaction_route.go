package interactionroute

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ordervoice/order-api/internal/interfaces/httpserver/handlers/interactionhandler"
	"ordervoice/order-api/internal/interfaces/httpserver/middlewares"
	"ordervoice/order-api/internal/interfaces/httpserver/requests"
	"ordervoice/order-api/internal/interfaces/httpserver/responses"
	"ordervoice/order-api/internal/utils/platformerrors"
)

type InteractionRoute struct {
	handler *interactionhandler.InteractionHandler
}

func NewInteractionRoute(handler *interactionhandler.InteractionHandler) *InteractionRoute {
	return &InteractionRoute{handler: handler}
}

// RegisterRoutes registers interaction pipeline routes under the
// tenant-scoped group.
func (r *InteractionRoute) RegisterRoutes(rg *gin.RouterGroup) {
	interactions := rg.Group("/interactions")
	interactions.POST("/process-text", r.processText)
	interactions.POST("/upload", r.processUpload)
}

func (r *InteractionRoute) processText(reqCtx *gin.Context) {
	tenantID, ok := middlewares.TenantFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant scope is required")
		return
	}

	var req requests.ProcessTextRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body")
		return
	}

	result, err := r.handler.ProcessText(reqCtx.Request.Context(), tenantID, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to process interaction")
		return
	}
	reqCtx.JSON(http.StatusCreated, result)
}

func (r *InteractionRoute) processUpload(reqCtx *gin.Context) {
	tenantID, ok := middlewares.TenantFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "tenant scope is required")
		return
	}

	customerID, err := uuid.Parse(reqCtx.PostForm("customer_id"))
	if err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "customer_id must be a valid UUID")
		return
	}

	file, err := reqCtx.FormFile("file")
	if err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "audio file is required")
		return
	}

	// Stage the upload on local disk for the transcription provider.
	assetPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := reqCtx.SaveUploadedFile(file, assetPath); err != nil {
		responses.HandleError(reqCtx, err, "Failed to stage uploaded file")
		return
	}
	defer os.Remove(assetPath)

	result, err := r.handler.ProcessUpload(reqCtx.Request.Context(), tenantID, customerID, assetPath, reqCtx.PostForm("source_type"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to process uploaded interaction")
		return
	}
	reqCtx.JSON(http.StatusCreated, result)
}
