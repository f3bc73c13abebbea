package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"ordervoice/order-api/internal/config"
)

type stubVerifier struct {
	verdict *SafetyVerdict
	err     error
	calls   int
}

func (s *stubVerifier) VerifySafety(ctx context.Context, text string) (*SafetyVerdict, error) {
	s.calls++
	return s.verdict, s.err
}

func TestSafetyGateOffSkipsProvider(t *testing.T) {
	verifier := &stubVerifier{verdict: &SafetyVerdict{Decision: SafetyBlock}}
	gate := NewSafetyGate(verifier, config.SafetyModeOff, true, zerolog.Nop())

	verdict, err := gate.Evaluate(context.Background(), "anything at all")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if verdict != nil {
		t.Errorf("got a verdict with SAFETY_MODE=off, want none")
	}
	if verifier.calls != 0 {
		t.Errorf("provider called %d times with SAFETY_MODE=off, want 0", verifier.calls)
	}
}

func TestSafetyGateMissingCredentialSkips(t *testing.T) {
	for _, mode := range []config.SafetyMode{config.SafetyModeLog, config.SafetyModeStrict} {
		verifier := &stubVerifier{verdict: &SafetyVerdict{Decision: SafetyBlock}}
		gate := NewSafetyGate(verifier, mode, false, zerolog.Nop())

		verdict, err := gate.Evaluate(context.Background(), "text")
		if err != nil {
			t.Fatalf("mode %s: Evaluate failed: %v", mode, err)
		}
		if verdict != nil {
			t.Errorf("mode %s: got a verdict without a credential, want skip", mode)
		}
		if verifier.calls != 0 {
			t.Errorf("mode %s: provider called without a credential", mode)
		}
	}
}

func TestSafetyGateStrictBlock(t *testing.T) {
	verifier := &stubVerifier{verdict: &SafetyVerdict{Decision: SafetyBlock, Reason: "threats of violence"}}
	gate := NewSafetyGate(verifier, config.SafetyModeStrict, true, zerolog.Nop())

	_, err := gate.Evaluate(context.Background(), "text")
	var safetyErr *ContentSafetyError
	if !errors.As(err, &safetyErr) {
		t.Fatalf("got %v, want ContentSafetyError", err)
	}
	if safetyErr.Reason != "threats of violence" {
		t.Errorf("reason = %q, want the provider reason", safetyErr.Reason)
	}
}

func TestSafetyGateLogModeContinuesOnBlock(t *testing.T) {
	verifier := &stubVerifier{verdict: &SafetyVerdict{Decision: SafetyBlock, Reason: "spam"}}
	gate := NewSafetyGate(verifier, config.SafetyModeLog, true, zerolog.Nop())

	verdict, err := gate.Evaluate(context.Background(), "text")
	if err != nil {
		t.Fatalf("log mode must not fail on block, got: %v", err)
	}
	if !verdict.Blocked() {
		t.Errorf("verdict not recorded as blocked")
	}
}

func TestSafetyGateAllow(t *testing.T) {
	verifier := &stubVerifier{verdict: &SafetyVerdict{Decision: SafetyAllow}}
	gate := NewSafetyGate(verifier, config.SafetyModeStrict, true, zerolog.Nop())

	verdict, err := gate.Evaluate(context.Background(), "a normal order")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if verdict == nil || verdict.Blocked() {
		t.Errorf("verdict = %+v, want an allow verdict", verdict)
	}
}

func TestSafetyGateProviderError(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("upstream timeout")}
	gate := NewSafetyGate(verifier, config.SafetyModeStrict, true, zerolog.Nop())

	_, err := gate.Evaluate(context.Background(), "text")
	if err == nil {
		t.Fatalf("expected provider error to propagate")
	}
	var safetyErr *ContentSafetyError
	if errors.As(err, &safetyErr) {
		t.Errorf("provider failure must not masquerade as a safety rejection")
	}
}
