package pipeline

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"ordervoice/order-api/internal/config"
	"ordervoice/order-api/internal/utils/platformerrors"
)

// Warned at most once per process lifetime, however many gates exist.
var missingCredentialWarning sync.Once

// SafetyGate applies the configured content-safety policy before extraction
// proceeds.
type SafetyGate struct {
	verifier      SafetyVerifier
	mode          config.SafetyMode
	hasCredential bool
	logger        zerolog.Logger
}

// NewSafetyGate creates a gate for the given mode and credential state. When
// checks would be silently skipped (mode is not off but no credential is
// configured) it emits a single process-wide warning.
func NewSafetyGate(verifier SafetyVerifier, mode config.SafetyMode, hasCredential bool, logger zerolog.Logger) *SafetyGate {
	gate := &SafetyGate{
		verifier:      verifier,
		mode:          mode,
		hasCredential: hasCredential,
		logger:        logger,
	}
	if mode != config.SafetyModeOff && !hasCredential {
		missingCredentialWarning.Do(func() {
			logger.Warn().
				Str("safety_mode", string(mode)).
				Msg("WHITE_CIRCLE_API_KEY is not set; content safety checks will be skipped until a key is provided")
		})
	}
	return gate
}

// Evaluate runs the safety check for one transcript. It returns a nil
// verdict when the check is skipped (mode off, or no credential). A block
// decision halts the pipeline only in strict mode; in log mode the verdict
// is returned for recording and processing continues.
func (g *SafetyGate) Evaluate(ctx context.Context, transcript string) (*SafetyVerdict, error) {
	switch {
	case g.mode == config.SafetyModeOff:
		g.logger.Debug().Msg("content safety check skipped (SAFETY_MODE=off)")
		return nil, nil
	case !g.hasCredential:
		g.logger.Debug().Msg("content safety check skipped, no credential configured")
		return nil, nil
	}

	verdict, err := g.verifier.VerifySafety(ctx, transcript)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "safety verification failed")
	}

	if verdict.Blocked() {
		reason := verdict.Reason
		if reason == "" {
			reason = "unsafe content detected"
		}
		if g.mode == config.SafetyModeStrict {
			g.logger.Warn().Str("reason", reason).Msg("content safety blocked interaction (strict mode)")
			return verdict, &ContentSafetyError{Reason: reason}
		}
		g.logger.Warn().Str("reason", reason).Msg("content safety flagged interaction (log mode)")
	}

	return verdict, nil
}
