package order

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Thresholds are the tunable limits of the anomaly rule set. They are held
// separately from the engine so a per-tenant configuration table can supply
// them later without changing the evaluation contract.
type Thresholds struct {
	MaxReasonableQuantity int
	MaxOrderValue         decimal.Decimal
}

// DefaultThresholds returns the platform-wide rule limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxReasonableQuantity: 10_000,
		MaxOrderValue:         decimal.NewFromInt(500_000),
	}
}

var (
	severityUnusualVolume    = decimal.NewFromFloat(8.00)
	severityZeroPrice        = decimal.NewFromFloat(6.50)
	severityInvalidQuantity  = decimal.NewFromFloat(7.00)
	severityDuplicateProduct = decimal.NewFromFloat(5.00)
	severityHighOrderValue   = decimal.NewFromFloat(7.50)
)

// RuleEngine evaluates the fixed anomaly rule set against an order's
// resolved items. Evaluation is deterministic: per-item rules fire in a
// fixed sequence for each item in input order, then the cross-item rules.
// Rules are independent; one item can trigger several.
type RuleEngine struct {
	thresholds Thresholds
}

// NewRuleEngine creates an engine with the given thresholds.
func NewRuleEngine(thresholds Thresholds) *RuleEngine {
	return &RuleEngine{thresholds: thresholds}
}

// Detect runs every rule over the items and returns all findings. It never
// short-circuits and has no side effects.
func (e *RuleEngine) Detect(orderID uuid.UUID, items []*OrderItem) []*Anomaly {
	anomalies := make([]*Anomaly, 0)

	for _, item := range items {
		if item.Quantity > e.thresholds.MaxReasonableQuantity {
			anomalies = append(anomalies, &Anomaly{
				OrderID:  orderID,
				RuleCode: RuleUnusualVolume,
				Description: fmt.Sprintf("Quantity %d for product %s exceeds threshold of %d",
					item.Quantity, item.ProductID, e.thresholds.MaxReasonableQuantity),
				SeverityScore: severityUnusualVolume,
			})
		}

		if !item.UnitPrice.IsPositive() {
			anomalies = append(anomalies, &Anomaly{
				OrderID:  orderID,
				RuleCode: RuleZeroPrice,
				Description: fmt.Sprintf("Unit price is %s for product %s",
					item.UnitPrice, item.ProductID),
				SeverityScore: severityZeroPrice,
			})
		}

		if item.Quantity <= 0 {
			anomalies = append(anomalies, &Anomaly{
				OrderID:  orderID,
				RuleCode: RuleInvalidQuantity,
				Description: fmt.Sprintf("Quantity %d for product %s is zero or negative",
					item.Quantity, item.ProductID),
				SeverityScore: severityInvalidQuantity,
			})
		}
	}

	// Duplicate products fire once per distinct product, in first-seen order.
	counts := make(map[uuid.UUID]int, len(items))
	seen := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if counts[item.ProductID] == 0 {
			seen = append(seen, item.ProductID)
		}
		counts[item.ProductID]++
	}
	for _, productID := range seen {
		if count := counts[productID]; count > 1 {
			anomalies = append(anomalies, &Anomaly{
				OrderID:  orderID,
				RuleCode: RuleDuplicateProduct,
				Description: fmt.Sprintf("Product %s appears %d times in the same order; lines should be consolidated",
					productID, count),
				SeverityScore: severityDuplicateProduct,
			})
		}
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if total.GreaterThan(e.thresholds.MaxOrderValue) {
		anomalies = append(anomalies, &Anomaly{
			OrderID:  orderID,
			RuleCode: RuleHighOrderValue,
			Description: fmt.Sprintf("Order total %s exceeds threshold of %s",
				total, e.thresholds.MaxOrderValue),
			SeverityScore: severityHighOrderValue,
		})
	}

	return anomalies
}
