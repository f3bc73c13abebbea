package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"ordervoice/order-api/internal/config"
	"ordervoice/order-api/internal/domain/catalog"
	"ordervoice/order-api/internal/domain/interaction"
	"ordervoice/order-api/internal/domain/order"
)

type fakeTx struct {
	commits   int
	rollbacks int
}

func (f *fakeTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

type fakeInteractionRepo struct {
	created      []*interaction.Interaction
	logs         []*interaction.AnalysisLog
	statusWrites map[uuid.UUID][]interaction.Status
	failCreate   error
	failStatus   map[interaction.Status]error
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{
		statusWrites: make(map[uuid.UUID][]interaction.Status),
		failStatus:   make(map[interaction.Status]error),
	}
}

func (f *fakeInteractionRepo) Create(ctx context.Context, i *interaction.Interaction) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	i.ID = uuid.New()
	f.created = append(f.created, i)
	return nil
}

func (f *fakeInteractionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status interaction.Status) error {
	if err := f.failStatus[status]; err != nil {
		return err
	}
	f.statusWrites[id] = append(f.statusWrites[id], status)
	return nil
}

func (f *fakeInteractionRepo) CreateAnalysisLog(ctx context.Context, l *interaction.AnalysisLog) error {
	f.logs = append(f.logs, l)
	return nil
}

type fakeProductRepo struct {
	products []*catalog.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p *catalog.Product) error { return nil }

func (f *fakeProductRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProductRepo) FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*catalog.Product, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProductRepo) FindBySKUs(ctx context.Context, tenantID uuid.UUID, skus []string) ([]*catalog.Product, error) {
	var found []*catalog.Product
	for _, p := range f.products {
		for _, sku := range skus {
			if p.TenantID == tenantID && p.SKU == sku {
				found = append(found, p)
			}
		}
	}
	return found, nil
}

func (f *fakeProductRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*catalog.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *catalog.Product) error { return nil }

func (f *fakeProductRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error { return nil }

type fakeOrderRepo struct {
	orders    []*order.Order
	items     []*order.OrderItem
	anomalies []*order.Anomaly
	quotes    []*order.Quote
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, o *order.Order) error {
	o.ID = uuid.New()
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderRepo) UpdateOrder(ctx context.Context, o *order.Order) error { return nil }

func (f *fakeOrderRepo) CreateItems(ctx context.Context, items []*order.OrderItem) error {
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeOrderRepo) CreateAnomalies(ctx context.Context, anomalies []*order.Anomaly) error {
	f.anomalies = append(f.anomalies, anomalies...)
	return nil
}

func (f *fakeOrderRepo) CreateQuote(ctx context.Context, q *order.Quote) error {
	f.quotes = append(f.quotes, q)
	return nil
}

func (f *fakeOrderRepo) CountExpiredQuotes(ctx context.Context, asOf time.Time) (int64, error) {
	return 0, nil
}

type fakeCapability struct {
	transcript      string
	transcribed     []string
	lines           []order.RequestedLine
	extractErr      error
	extractedInputs []string
}

func (f *fakeCapability) Transcribe(ctx context.Context, assetRef string) (string, error) {
	f.transcribed = append(f.transcribed, assetRef)
	return f.transcript, nil
}

func (f *fakeCapability) ExtractOrderLines(ctx context.Context, transcript string) ([]order.RequestedLine, error) {
	f.extractedInputs = append(f.extractedInputs, transcript)
	if f.extractErr != nil {
		return nil, f.extractErr
	}
	return f.lines, nil
}

type orchestratorFixture struct {
	orchestrator *Orchestrator
	tx           *fakeTx
	interactions *fakeInteractionRepo
	orders       *fakeOrderRepo
	ai           *fakeCapability
	tenantID     uuid.UUID
}

func newOrchestratorFixture(t *testing.T, mode config.SafetyMode, verifier SafetyVerifier, products ...*catalog.Product) *orchestratorFixture {
	t.Helper()

	tenantID := uuid.New()
	for _, p := range products {
		p.TenantID = tenantID
	}

	tx := &fakeTx{}
	interactions := newFakeInteractionRepo()
	orders := &fakeOrderRepo{}
	ai := &fakeCapability{
		transcript: "two widgets please",
		lines:      []order.RequestedLine{{SKU: "WIDGET-1", Quantity: 2}},
	}
	builder := order.NewBuilder(
		catalog.NewResolver(&fakeProductRepo{products: products}),
		orders,
		order.NewRuleEngine(order.DefaultThresholds()),
		zerolog.Nop(),
	)
	hasCredential := verifier != nil
	gate := NewSafetyGate(verifier, mode, hasCredential, zerolog.Nop())

	return &orchestratorFixture{
		orchestrator: NewOrchestrator(tx, interactions, orders, builder, ai, gate, zerolog.Nop()),
		tx:           tx,
		interactions: interactions,
		orders:       orders,
		ai:           ai,
		tenantID:     tenantID,
	}
}

func widget(price string) *catalog.Product {
	return &catalog.Product{
		ID:    uuid.New(),
		Name:  "widget",
		SKU:   "WIDGET-1",
		Price: decimal.RequireFromString(price),
	}
}

func TestProcessTextSuccess(t *testing.T) {
	fx := newOrchestratorFixture(t, config.SafetyModeOff, nil, widget("10.00"))

	result, err := fx.orchestrator.ProcessText(context.Background(), TextInput{
		TenantID:   fx.tenantID,
		CustomerID: uuid.New(),
		Transcript: "two widgets please",
		SourceType: interaction.SourceText,
	})
	if err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	if result.Status != order.StatusDraft {
		t.Errorf("status = %s, want DRAFT", result.Status)
	}
	if result.AnomaliesDetected != 0 {
		t.Errorf("anomalies = %d, want 0", result.AnomaliesDetected)
	}
	if result.InteractionID == uuid.Nil || result.OrderID == uuid.Nil {
		t.Errorf("result missing identities: %+v", result)
	}

	writes := fx.interactions.statusWrites[result.InteractionID]
	if len(writes) != 1 || writes[0] != interaction.StatusProcessed {
		t.Errorf("status writes = %v, want [PROCESSED]", writes)
	}
	if len(fx.interactions.logs) != 1 {
		t.Fatalf("got %d analysis logs, want 1", len(fx.interactions.logs))
	}
	log := fx.interactions.logs[0]
	if log.TranscriptText != "two widgets please" {
		t.Errorf("log transcript = %q", log.TranscriptText)
	}
	if !log.ConfidenceScore.Equal(decimal.RequireFromString("0.92")) {
		t.Errorf("confidence = %s, want 0.92", log.ConfidenceScore)
	}
	if !strings.Contains(string(log.RawExtraction), "WIDGET-1") {
		t.Errorf("raw extraction payload %s does not carry the extracted items", log.RawExtraction)
	}

	if len(fx.orders.quotes) != 1 {
		t.Fatalf("got %d quotes, want 1", len(fx.orders.quotes))
	}
	if !fx.orders.quotes[0].QuoteAmount.Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("quote amount = %s, want 20.00", fx.orders.quotes[0].QuoteAmount)
	}

	// One transaction for the interaction identity, one for the pipeline.
	if fx.tx.commits != 2 || fx.tx.rollbacks != 0 {
		t.Errorf("commits=%d rollbacks=%d, want 2/0", fx.tx.commits, fx.tx.rollbacks)
	}
}

func TestProcessUploadTranscribesFirst(t *testing.T) {
	fx := newOrchestratorFixture(t, config.SafetyModeOff, nil, widget("10.00"))

	result, err := fx.orchestrator.ProcessUpload(context.Background(), UploadInput{
		TenantID:   fx.tenantID,
		CustomerID: uuid.New(),
		AssetRef:   "calls/recording-17.wav",
		SourceType: interaction.SourceVoice,
	})
	if err != nil {
		t.Fatalf("ProcessUpload failed: %v", err)
	}

	if len(fx.ai.transcribed) != 1 || fx.ai.transcribed[0] != "calls/recording-17.wav" {
		t.Errorf("transcribe calls = %v, want the asset ref", fx.ai.transcribed)
	}
	if len(fx.ai.extractedInputs) != 1 || fx.ai.extractedInputs[0] != "two widgets please" {
		t.Errorf("extraction input = %v, want the transcription output", fx.ai.extractedInputs)
	}
	if fx.interactions.created[0].RawAssetURL == nil || *fx.interactions.created[0].RawAssetURL != "calls/recording-17.wav" {
		t.Errorf("interaction raw asset = %v, want the asset ref", fx.interactions.created[0].RawAssetURL)
	}
	if result.Status != order.StatusDraft {
		t.Errorf("status = %s, want DRAFT", result.Status)
	}
}

func TestProcessTextStrictSafetyBlock(t *testing.T) {
	verifier := &stubVerifier{verdict: &SafetyVerdict{Decision: SafetyBlock, Reason: "abusive content"}}
	fx := newOrchestratorFixture(t, config.SafetyModeStrict, verifier, widget("10.00"))

	_, err := fx.orchestrator.ProcessText(context.Background(), TextInput{
		TenantID:   fx.tenantID,
		CustomerID: uuid.New(),
		Transcript: "blocked text",
		SourceType: interaction.SourceText,
	})

	var safetyErr *ContentSafetyError
	if !errors.As(err, &safetyErr) {
		t.Fatalf("got %v, want ContentSafetyError", err)
	}

	interactionID := fx.interactions.created[0].ID
	writes := fx.interactions.statusWrites[interactionID]
	if len(writes) != 1 || writes[0] != interaction.StatusFailed {
		t.Errorf("status writes = %v, want [FAILED]", writes)
	}
	if len(fx.interactions.logs) != 0 {
		t.Errorf("analysis log created despite the safety block")
	}
	if len(fx.orders.orders) != 0 || len(fx.orders.quotes) != 0 {
		t.Errorf("order/quote created despite the safety block")
	}
	if fx.tx.rollbacks != 1 {
		t.Errorf("rollbacks = %d, want 1", fx.tx.rollbacks)
	}
}

func TestProcessTextExtractionFailure(t *testing.T) {
	fx := newOrchestratorFixture(t, config.SafetyModeOff, nil, widget("10.00"))
	fx.ai.extractErr = errors.New("provider returned 503")

	_, err := fx.orchestrator.ProcessText(context.Background(), TextInput{
		TenantID:   fx.tenantID,
		CustomerID: uuid.New(),
		Transcript: "anything",
		SourceType: interaction.SourceText,
	})
	if err == nil {
		t.Fatalf("expected pipeline failure")
	}
	var safetyErr *ContentSafetyError
	if errors.As(err, &safetyErr) {
		t.Errorf("generic failure surfaced as a safety rejection")
	}

	interactionID := fx.interactions.created[0].ID
	writes := fx.interactions.statusWrites[interactionID]
	if len(writes) != 1 || writes[0] != interaction.StatusFailed {
		t.Errorf("status writes = %v, want [FAILED]", writes)
	}
	if len(fx.orders.orders) != 0 {
		t.Errorf("order created despite extraction failure")
	}
}

func TestCompensationFailureIsSwallowed(t *testing.T) {
	fx := newOrchestratorFixture(t, config.SafetyModeOff, nil, widget("10.00"))
	fx.ai.extractErr = errors.New("provider returned 503")
	fx.interactions.failStatus[interaction.StatusFailed] = errors.New("connection reset")

	_, err := fx.orchestrator.ProcessText(context.Background(), TextInput{
		TenantID:   fx.tenantID,
		CustomerID: uuid.New(),
		Transcript: "anything",
		SourceType: interaction.SourceText,
	})
	if err == nil {
		t.Fatalf("expected the original pipeline failure")
	}
	if !strings.Contains(err.Error(), "order extraction failed") {
		t.Errorf("error %v, want the original extraction failure, not the compensation failure", err)
	}
}

func TestNoCompensationWhenInteractionNeverPersisted(t *testing.T) {
	fx := newOrchestratorFixture(t, config.SafetyModeOff, nil, widget("10.00"))
	fx.interactions.failCreate = errors.New("database unavailable")

	_, err := fx.orchestrator.ProcessText(context.Background(), TextInput{
		TenantID:   fx.tenantID,
		CustomerID: uuid.New(),
		Transcript: "anything",
		SourceType: interaction.SourceText,
	})
	if err == nil {
		t.Fatalf("expected failure")
	}
	if len(fx.interactions.statusWrites) != 0 {
		t.Errorf("compensation attempted for an interaction that was never durable")
	}
}

func TestProcessTextFlagsAnomalousOrder(t *testing.T) {
	fx := newOrchestratorFixture(t, config.SafetyModeOff, nil, widget("10.00"))
	fx.ai.lines = []order.RequestedLine{
		{SKU: "WIDGET-1", Quantity: 5},
		{SKU: "WIDGET-1", Quantity: 5},
		{SKU: "UNKNOWN-99", Quantity: 1},
	}

	result, err := fx.orchestrator.ProcessText(context.Background(), TextInput{
		TenantID:   fx.tenantID,
		CustomerID: uuid.New(),
		Transcript: "ten widgets and a mystery item",
		SourceType: interaction.SourceText,
	})
	if err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	if result.Status != order.StatusFlagged {
		t.Errorf("status = %s, want FLAGGED", result.Status)
	}
	// One UNKNOWN_SKU plus one DUPLICATE_PRODUCT.
	if result.AnomaliesDetected != 2 {
		t.Errorf("anomalies = %d, want 2", result.AnomaliesDetected)
	}
}
