package interactionhandler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ordervoice/order-api/internal/domain/customer"
	"ordervoice/order-api/internal/domain/interaction"
	"ordervoice/order-api/internal/domain/pipeline"
	"ordervoice/order-api/internal/infrastructure/metrics"
	"ordervoice/order-api/internal/interfaces/httpserver/requests"
	"ordervoice/order-api/internal/utils/platformerrors"
)

type InteractionHandler struct {
	orchestrator    *pipeline.Orchestrator
	customerService *customer.Service
	logger          zerolog.Logger
}

func NewInteractionHandler(
	orchestrator *pipeline.Orchestrator,
	customerService *customer.Service,
	logger zerolog.Logger,
) *InteractionHandler {
	return &InteractionHandler{
		orchestrator:    orchestrator,
		customerService: customerService,
		logger:          logger,
	}
}

func parseSourceType(ctx context.Context, raw string, fallback interaction.SourceKind) (interaction.SourceKind, error) {
	if raw == "" {
		return fallback, nil
	}
	switch kind := interaction.SourceKind(raw); kind {
	case interaction.SourceText, interaction.SourceVoice, interaction.SourceEmail:
		return kind, nil
	default:
		return "", platformerrors.NewError(ctx, platformerrors.LayerHandler,
			platformerrors.ErrorTypeValidation, "source_type must be text, voice or email", nil)
	}
}

// ProcessText runs the order pipeline for a pre-transcribed communication.
func (h *InteractionHandler) ProcessText(ctx context.Context, tenantID uuid.UUID, req requests.ProcessTextRequest) (*pipeline.Result, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler,
			platformerrors.ErrorTypeValidation, "customer_id must be a valid UUID", err)
	}

	sourceType, err := parseSourceType(ctx, req.SourceType, interaction.SourceText)
	if err != nil {
		return nil, err
	}

	// Reject unknown customers before anything is persisted.
	if _, err := h.customerService.GetCustomer(ctx, tenantID, customerID); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := h.orchestrator.ProcessText(ctx, pipeline.TextInput{
		TenantID:   tenantID,
		CustomerID: customerID,
		Transcript: req.Transcript,
		SourceType: sourceType,
	})
	h.recordRun(string(sourceType), result, err, start)
	return result, err
}

// ProcessUpload runs the full pipeline, transcription included, for an
// uploaded audio asset already staged on local disk. The source type
// defaults to voice when the form omits it.
func (h *InteractionHandler) ProcessUpload(ctx context.Context, tenantID, customerID uuid.UUID, assetPath, rawSourceType string) (*pipeline.Result, error) {
	sourceType, err := parseSourceType(ctx, rawSourceType, interaction.SourceVoice)
	if err != nil {
		return nil, err
	}

	if _, err := h.customerService.GetCustomer(ctx, tenantID, customerID); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := h.orchestrator.ProcessUpload(ctx, pipeline.UploadInput{
		TenantID:   tenantID,
		CustomerID: customerID,
		AssetRef:   assetPath,
		SourceType: sourceType,
	})
	h.recordRun(string(sourceType), result, err, start)
	return result, err
}

func (h *InteractionHandler) recordRun(sourceType string, result *pipeline.Result, err error, start time.Time) {
	outcome := "processed"
	if err != nil {
		outcome = "failed"
		if pipeline.IsContentBlocked(err) {
			outcome = "blocked"
		}
	}
	metrics.RecordPipelineRun(sourceType, outcome, time.Since(start).Seconds())

	if result != nil {
		h.logger.Info().
			Str("interaction_id", result.InteractionID.String()).
			Str("order_id", result.OrderID.String()).
			Str("outcome", outcome).
			Msg("pipeline run recorded")
	}
}
