package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"ordervoice/order-api/internal/domain/interaction"
	"ordervoice/order-api/internal/domain/order"
	"ordervoice/order-api/internal/utils/platformerrors"
)

// Confidence recorded on every analysis log until the providers report one.
var extractionConfidence = decimal.NewFromFloat(0.92)

// Result summarizes one completed pipeline run for the HTTP boundary.
type Result struct {
	InteractionID     uuid.UUID    `json:"interaction_id"`
	OrderID           uuid.UUID    `json:"order_id"`
	Status            order.Status `json:"status"`
	AnomaliesDetected int          `json:"anomalies_detected"`
}

// rawExtraction is the opaque payload stored on the analysis log.
type rawExtraction struct {
	ExtractedItems []order.RequestedLine `json:"extracted_items"`
	SafetyVerdict  *SafetyVerdict        `json:"safety_verdict"`
}

// Orchestrator drives the ingest-to-order pipeline: safety gate, structured
// extraction, order construction, quote generation, all inside one
// transaction per interaction.
type Orchestrator struct {
	tx           TxManager
	interactions interaction.Repository
	orders       order.Repository
	builder      *order.Builder
	ai           CapabilityProvider
	safety       *SafetyGate
	logger       zerolog.Logger
	now          func() time.Time
}

// NewOrchestrator creates a new pipeline orchestrator
func NewOrchestrator(
	tx TxManager,
	interactions interaction.Repository,
	orders order.Repository,
	builder *order.Builder,
	ai CapabilityProvider,
	safety *SafetyGate,
	logger zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		tx:           tx,
		interactions: interactions,
		orders:       orders,
		builder:      builder,
		ai:           ai,
		safety:       safety,
		logger:       logger,
		now:          time.Now,
	}
}

// TextInput is the request for the pre-transcribed pipeline entry point.
type TextInput struct {
	TenantID   uuid.UUID
	CustomerID uuid.UUID
	Transcript string
	SourceType interaction.SourceKind
}

// UploadInput is the request for the raw-asset pipeline entry point.
type UploadInput struct {
	TenantID   uuid.UUID
	CustomerID uuid.UUID
	AssetRef   string
	SourceType interaction.SourceKind
}

// ProcessText runs the pipeline for a transcript that is already available:
// safety, extraction, order, quote.
func (o *Orchestrator) ProcessText(ctx context.Context, in TextInput) (*Result, error) {
	return o.run(ctx, in.TenantID, in.CustomerID, in.SourceType, nil,
		func(ctx context.Context) (string, error) {
			return in.Transcript, nil
		})
}

// ProcessUpload runs the full pipeline for an uploaded asset, transcribing
// it first.
func (o *Orchestrator) ProcessUpload(ctx context.Context, in UploadInput) (*Result, error) {
	return o.run(ctx, in.TenantID, in.CustomerID, in.SourceType, &in.AssetRef,
		func(ctx context.Context) (string, error) {
			return o.ai.Transcribe(ctx, in.AssetRef)
		})
}

// run is the shared pipeline. The interaction is persisted and committed
// first so its identity is durable; everything downstream shares one
// transaction that commits atomically or not at all. On failure the
// already-durable interaction is marked FAILED in a best-effort second
// transaction.
func (o *Orchestrator) run(
	ctx context.Context,
	tenantID, customerID uuid.UUID,
	sourceType interaction.SourceKind,
	rawAssetURL *string,
	transcribe func(ctx context.Context) (string, error),
) (*Result, error) {
	inter := &interaction.Interaction{
		TenantID:    tenantID,
		CustomerID:  customerID,
		SourceType:  sourceType,
		RawAssetURL: rawAssetURL,
		Status:      interaction.StatusPending,
	}
	if err := o.tx.RunInTx(ctx, func(ctx context.Context) error {
		return o.interactions.Create(ctx, inter)
	}); err != nil {
		// Nothing durable yet, so there is nothing to compensate.
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create interaction")
	}

	var result *Result
	err := o.tx.RunInTx(ctx, func(ctx context.Context) error {
		transcript, err := transcribe(ctx)
		if err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "transcription failed")
		}

		verdict, err := o.safety.Evaluate(ctx, transcript)
		if err != nil {
			return err
		}

		lines, err := o.ai.ExtractOrderLines(ctx, transcript)
		if err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "order extraction failed")
		}

		payload, err := json.Marshal(rawExtraction{ExtractedItems: lines, SafetyVerdict: verdict})
		if err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to encode extraction payload")
		}
		if err := o.interactions.CreateAnalysisLog(ctx, &interaction.AnalysisLog{
			InteractionID:   inter.ID,
			TranscriptText:  transcript,
			RawExtraction:   payload,
			ConfidenceScore: extractionConfidence,
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to persist analysis log")
		}

		ord, items, anomalies, err := o.builder.Build(ctx, tenantID, customerID, inter.ID, lines)
		if err != nil {
			return err
		}

		quote := order.NewQuote(ord, o.now())
		if err := o.orders.CreateQuote(ctx, quote); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to persist quote")
		}

		if err := o.interactions.UpdateStatus(ctx, inter.ID, interaction.StatusProcessed); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to finalize interaction")
		}

		o.logger.Info().
			Str("interaction_id", inter.ID.String()).
			Str("order_id", ord.ID.String()).
			Int("items", len(items)).
			Int("anomalies", len(anomalies)).
			Msg("interaction processed")

		result = &Result{
			InteractionID:     inter.ID,
			OrderID:           ord.ID,
			Status:            ord.Status,
			AnomaliesDetected: len(anomalies),
		}
		return nil
	})
	if err != nil {
		o.compensate(ctx, inter.ID)
		return nil, err
	}

	return result, nil
}

// compensate marks the interaction FAILED in its own transaction. Its
// failure is logged and swallowed so the original pipeline error is what
// reaches the caller.
func (o *Orchestrator) compensate(ctx context.Context, interactionID uuid.UUID) {
	err := o.tx.RunInTx(ctx, func(ctx context.Context) error {
		return o.interactions.UpdateStatus(ctx, interactionID, interaction.StatusFailed)
	})
	if err != nil {
		o.logger.Error().
			Err(err).
			Str("interaction_id", interactionID.String()).
			Msg("failed to mark interaction FAILED after pipeline error")
	}
}
