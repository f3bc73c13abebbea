package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ordervoice/order-api/internal/domain/pipeline"
	"ordervoice/order-api/internal/utils/platformerrors"
)

// ErrorResponse represents an error response with platform error details
type ErrorResponse struct {
	Error     string `json:"error"`
	Type      string `json:"type,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError maps domain errors to HTTP responses. Content-safety
// rejections map to 422 so callers can distinguish policy blocks from
// malformed requests or provider outages.
func HandleError(reqCtx *gin.Context, err error, message string) {
	var safetyErr *pipeline.ContentSafetyError
	if errors.As(err, &safetyErr) {
		reqCtx.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: safetyErr.Error(),
			Type:  string(platformerrors.ErrorTypeContentBlocked),
		})
		return
	}

	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		statusCode := platformerrors.ErrorTypeToHTTPStatus(platformErr.Type)

		errorMessage := platformErr.Message
		if errorMessage == "" {
			errorMessage = message
		}

		reqCtx.AbortWithStatusJSON(statusCode, ErrorResponse{
			Error:     errorMessage,
			Type:      string(platformErr.Type),
			RequestID: platformErr.RequestID,
		})
		return
	}

	// Non-platform errors
	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error: message,
		Type:  string(platformerrors.ErrorTypeInternal),
	})
}

// HandleNewError creates a new typed error at the route layer and handles it
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string) {
	err := platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, errorType, message, nil)
	HandleError(reqCtx, err, message)
}
