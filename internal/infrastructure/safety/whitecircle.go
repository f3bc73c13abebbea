package safety

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"ordervoice/order-api/internal/config"
	"ordervoice/order-api/internal/domain/pipeline"
	"ordervoice/order-api/internal/infrastructure/metrics"
	"ordervoice/order-api/internal/utils/httpclients"
	"ordervoice/order-api/internal/utils/platformerrors"
)

// WhiteCircleClient implements pipeline.SafetyVerifier against the
// WhiteCircle content-safety API.
type WhiteCircleClient struct {
	client *resty.Client
	logger zerolog.Logger
}

var _ pipeline.SafetyVerifier = (*WhiteCircleClient)(nil)

type checkRequest struct {
	Content string `json:"content"`
}

type checkResponse struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

func NewWhiteCircleClient(cfg *config.Config, logger zerolog.Logger) *WhiteCircleClient {
	client := httpclients.NewClient("WhiteCircleClient")
	client.SetBaseURL(cfg.WhiteCircleBaseURL)
	client.SetTimeout(cfg.WhiteCircleTimeout)
	client.SetAuthToken(cfg.WhiteCircleAPIKey)
	return &WhiteCircleClient{client: client, logger: logger}
}

// VerifySafety submits the transcript for moderation and maps the response
// to a verdict. Transport and non-2xx failures surface as external errors;
// the caller decides what a failed check means for the pipeline.
func (c *WhiteCircleClient) VerifySafety(ctx context.Context, content string) (*pipeline.SafetyVerdict, error) {
	var result checkResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(checkRequest{Content: content}).
		SetResult(&result).
		Post("/v1/check")
	if err != nil {
		metrics.RecordProviderError("whitecircle", "transport")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "safety provider request failed", err)
	}
	if resp.IsError() {
		metrics.RecordProviderError("whitecircle", "status")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("safety provider returned status %d", resp.StatusCode()), nil)
	}

	decision := pipeline.SafetyAllow
	if strings.EqualFold(result.Decision, string(pipeline.SafetyBlock)) {
		decision = pipeline.SafetyBlock
	}
	metrics.RecordSafetyVerdict(string(decision))

	c.logger.Debug().
		Str("decision", string(decision)).
		Msg("content safety verdict received")

	return &pipeline.SafetyVerdict{
		Decision: decision,
		Reason:   result.Reason,
	}, nil
}
