package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"ordervoice/order-api/internal/domain/catalog"
	"ordervoice/order-api/internal/utils/platformerrors"
)

var severityUnknownSKU = decimal.NewFromFloat(7.00)

// Builder turns extracted order lines into a persisted Order with items and
// anomaly findings. It never commits; every write joins the transaction
// carried by ctx.
type Builder struct {
	resolver *catalog.Resolver
	repo     Repository
	engine   *RuleEngine
	logger   zerolog.Logger
}

// NewBuilder creates a new order builder
func NewBuilder(resolver *catalog.Resolver, repo Repository, engine *RuleEngine, logger zerolog.Logger) *Builder {
	return &Builder{
		resolver: resolver,
		repo:     repo,
		engine:   engine,
		logger:   logger,
	}
}

// Build resolves the requested lines against the tenant catalog, creates the
// order and its items, runs anomaly detection, and flags the order when any
// anomaly exists. Lines whose SKU is not in the catalog never become items;
// each produces exactly one UNKNOWN_SKU anomaly instead.
func (b *Builder) Build(ctx context.Context, tenantID, customerID, interactionID uuid.UUID, lines []RequestedLine) (*Order, []*OrderItem, []*Anomaly, error) {
	skus := make([]string, len(lines))
	for i, line := range lines {
		skus[i] = line.SKU
	}
	resolved, err := b.resolver.ResolveSKUs(ctx, tenantID, skus)
	if err != nil {
		return nil, nil, nil, err
	}

	// The order row is created first so items and anomalies can reference
	// its identity before commit.
	ord := &Order{
		TenantID:      tenantID,
		CustomerID:    customerID,
		InteractionID: interactionID,
		Status:        StatusDraft,
		TotalAmount:   decimal.Zero,
	}
	if err := b.repo.CreateOrder(ctx, ord); err != nil {
		return nil, nil, nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create order")
	}

	total := decimal.Zero
	items := make([]*OrderItem, 0, len(lines))
	anomalies := make([]*Anomaly, 0)

	for _, line := range lines {
		product, ok := resolved[line.SKU]
		if !ok {
			b.logger.Warn().
				Str("sku", line.SKU).
				Str("tenant_id", tenantID.String()).
				Msg("SKU not found in catalog, flagging as anomaly")
			anomalies = append(anomalies, &Anomaly{
				OrderID:  ord.ID,
				RuleCode: RuleUnknownSKU,
				Description: fmt.Sprintf("SKU %q (qty %d) not found in product catalog",
					line.SKU, line.Quantity),
				SeverityScore: severityUnknownSKU,
			})
			continue
		}

		items = append(items, &OrderItem{
			OrderID:   ord.ID,
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	ord.TotalAmount = total
	anomalies = append(anomalies, b.engine.Detect(ord.ID, items)...)
	if len(anomalies) > 0 {
		ord.Status = StatusFlagged
	}

	if len(items) > 0 {
		if err := b.repo.CreateItems(ctx, items); err != nil {
			return nil, nil, nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create order items")
		}
	}
	if len(anomalies) > 0 {
		if err := b.repo.CreateAnomalies(ctx, anomalies); err != nil {
			return nil, nil, nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create anomalies")
		}
	}
	if err := b.repo.UpdateOrder(ctx, ord); err != nil {
		return nil, nil, nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to finalize order")
	}

	return ord, items, anomalies, nil
}
