package pipeline

import (
	"context"

	"ordervoice/order-api/internal/domain/order"
)

// CapabilityProvider is the AI collaborator: black-box network calls that
// return structured data or fail. The pipeline never retries them.
type CapabilityProvider interface {
	// Transcribe converts the referenced raw asset into text.
	Transcribe(ctx context.Context, assetRef string) (string, error)
	// ExtractOrderLines pulls {sku, quantity} lines out of a transcript.
	ExtractOrderLines(ctx context.Context, transcript string) ([]order.RequestedLine, error)
}

// SafetyDecision is the provider's verdict on a transcript.
type SafetyDecision string

const (
	SafetyAllow SafetyDecision = "allow"
	SafetyBlock SafetyDecision = "block"
)

// SafetyVerdict is the structured outcome of one safety verification call.
type SafetyVerdict struct {
	Decision SafetyDecision `json:"decision"`
	Reason   string         `json:"reason,omitempty"`
}

// Blocked reports whether the provider rejected the content.
func (v *SafetyVerdict) Blocked() bool {
	return v != nil && v.Decision == SafetyBlock
}

// SafetyVerifier is the external content-safety collaborator.
type SafetyVerifier interface {
	VerifySafety(ctx context.Context, text string) (*SafetyVerdict, error)
}

// TxManager runs fn inside one transaction scope: commit when fn returns
// nil, roll back (discarding all uncommitted writes) when it errors.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
