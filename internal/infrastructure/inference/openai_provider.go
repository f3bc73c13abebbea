package inference

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"ordervoice/order-api/internal/config"
	"ordervoice/order-api/internal/domain/order"
	"ordervoice/order-api/internal/domain/pipeline"
	"ordervoice/order-api/internal/infrastructure/metrics"
	"ordervoice/order-api/internal/utils/platformerrors"
)

const extractionSystemPrompt = `You extract purchase intents from customer communications.
Given a transcript, return JSON of the form {"items": [{"sku": "<SKU>", "qty": <integer>}]}.
Only include items the customer clearly wants to order. Keep SKUs exactly as spoken or written.
If no order can be identified, return {"items": []}. Return JSON only, no prose.`

// OpenAIProvider implements pipeline.CapabilityProvider on the OpenAI API:
// audio transcription plus JSON-mode chat completion for structured
// extraction.
type OpenAIProvider struct {
	client          *openai.Client
	model           string
	transcribeModel string
	logger          zerolog.Logger
}

var _ pipeline.CapabilityProvider = (*OpenAIProvider)(nil)

func NewOpenAIProvider(cfg *config.Config, logger zerolog.Logger) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	return &OpenAIProvider{
		client:          openai.NewClientWithConfig(clientConfig),
		model:           cfg.OpenAIModel,
		transcribeModel: cfg.OpenAITranscribeModel,
		logger:          logger,
	}
}

// Transcribe converts an uploaded audio asset to text.
func (p *OpenAIProvider) Transcribe(ctx context.Context, assetRef string) (string, error) {
	resp, err := p.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    p.transcribeModel,
		FilePath: assetRef,
	})
	if err != nil {
		metrics.RecordProviderError("openai", "transcription")
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "transcription request failed", err)
	}

	transcript := strings.TrimSpace(resp.Text)
	p.logger.Debug().
		Str("asset_ref", assetRef).
		Int("transcript_chars", len(transcript)).
		Msg("audio transcribed")
	return transcript, nil
}

// extractionPayload mirrors the JSON contract in the extraction prompt.
type extractionPayload struct {
	Items []order.RequestedLine `json:"items"`
}

// ExtractOrderLines asks the chat model for the {sku, qty} pairs present in
// the transcript. The model is pinned to JSON output; anything unparseable
// is surfaced as an external error rather than guessed at.
func (p *OpenAIProvider) ExtractOrderLines(ctx context.Context, transcript string) ([]order.RequestedLine, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractionSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
	})
	if err != nil {
		metrics.RecordProviderError("openai", "extraction")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "extraction request failed", err)
	}
	if len(resp.Choices) == 0 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "extraction returned no choices", nil)
	}

	content := resp.Choices[0].Message.Content
	var payload extractionPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		p.logger.Error().
			Str("content", content).
			Err(err).
			Msg("extraction response is not valid JSON")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "extraction response is not valid JSON", err)
	}

	p.logger.Debug().
		Int("items", len(payload.Items)).
		Msg("order lines extracted")
	return payload.Items, nil
}
