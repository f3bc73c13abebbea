package order

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testItem(productID uuid.UUID, quantity int, price string) *OrderItem {
	return &OrderItem{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func findingsByCode(anomalies []*Anomaly, code RuleCode) []*Anomaly {
	found := make([]*Anomaly, 0)
	for _, a := range anomalies {
		if a.RuleCode == code {
			found = append(found, a)
		}
	}
	return found
}

func TestDetectUnusualVolume(t *testing.T) {
	engine := NewRuleEngine(DefaultThresholds())
	orderID := uuid.New()

	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{"at threshold", 10_000, 0},
		{"one above threshold", 10_001, 1},
		{"far above threshold", 250_000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anomalies := engine.Detect(orderID, []*OrderItem{testItem(uuid.New(), tt.quantity, "1.00")})
			got := findingsByCode(anomalies, RuleUnusualVolume)
			if len(got) != tt.want {
				t.Fatalf("quantity %d: got %d UNUSUAL_VOLUME findings, want %d", tt.quantity, len(got), tt.want)
			}
			if tt.want == 1 && !got[0].SeverityScore.Equal(decimal.RequireFromString("8")) {
				t.Errorf("severity = %s, want 8.00", got[0].SeverityScore)
			}
		})
	}
}

func TestDetectZeroPrice(t *testing.T) {
	engine := NewRuleEngine(DefaultThresholds())
	orderID := uuid.New()

	anomalies := engine.Detect(orderID, []*OrderItem{testItem(uuid.New(), 5, "0")})
	got := findingsByCode(anomalies, RuleZeroPrice)
	if len(got) != 1 {
		t.Fatalf("got %d ZERO_PRICE findings, want 1", len(got))
	}
	if !got[0].SeverityScore.Equal(decimal.RequireFromString("6.5")) {
		t.Errorf("severity = %s, want 6.50", got[0].SeverityScore)
	}

	// A missing price on the zero-value item behaves the same way.
	anomalies = engine.Detect(orderID, []*OrderItem{{ID: uuid.New(), ProductID: uuid.New(), Quantity: 2}})
	if len(findingsByCode(anomalies, RuleZeroPrice)) != 1 {
		t.Errorf("missing price did not produce a ZERO_PRICE finding")
	}
}

func TestDetectInvalidQuantity(t *testing.T) {
	engine := NewRuleEngine(DefaultThresholds())
	orderID := uuid.New()

	for _, quantity := range []int{0, -5} {
		anomalies := engine.Detect(orderID, []*OrderItem{testItem(uuid.New(), quantity, "9.99")})
		got := findingsByCode(anomalies, RuleInvalidQuantity)
		if len(got) != 1 {
			t.Fatalf("quantity %d: got %d INVALID_QUANTITY findings, want 1", quantity, len(got))
		}
		if !got[0].SeverityScore.Equal(decimal.RequireFromString("7")) {
			t.Errorf("severity = %s, want 7.00", got[0].SeverityScore)
		}
	}
}

func TestDetectRulesAreIndependent(t *testing.T) {
	engine := NewRuleEngine(DefaultThresholds())
	orderID := uuid.New()

	// Missing price and non-positive quantity on the same item yield two
	// separate findings, not one merged.
	anomalies := engine.Detect(orderID, []*OrderItem{testItem(uuid.New(), -1, "0")})
	if len(anomalies) != 2 {
		t.Fatalf("got %d findings, want 2", len(anomalies))
	}
	if len(findingsByCode(anomalies, RuleZeroPrice)) != 1 {
		t.Errorf("missing ZERO_PRICE finding")
	}
	if len(findingsByCode(anomalies, RuleInvalidQuantity)) != 1 {
		t.Errorf("missing INVALID_QUANTITY finding")
	}
}

func TestDetectDuplicateProduct(t *testing.T) {
	engine := NewRuleEngine(DefaultThresholds())
	orderID := uuid.New()
	productID := uuid.New()

	items := []*OrderItem{
		testItem(productID, 1, "10.00"),
		testItem(productID, 2, "10.00"),
		testItem(productID, 3, "10.00"),
		testItem(uuid.New(), 4, "10.00"),
	}
	anomalies := engine.Detect(orderID, items)
	got := findingsByCode(anomalies, RuleDuplicateProduct)
	if len(got) != 1 {
		t.Fatalf("got %d DUPLICATE_PRODUCT findings, want exactly 1 per distinct product", len(got))
	}
	if !strings.Contains(got[0].Description, "appears 3 times") {
		t.Errorf("description %q does not mention the duplicate count", got[0].Description)
	}
	if !got[0].SeverityScore.Equal(decimal.RequireFromString("5")) {
		t.Errorf("severity = %s, want 5.00", got[0].SeverityScore)
	}
}

func TestDetectHighOrderValue(t *testing.T) {
	engine := NewRuleEngine(DefaultThresholds())
	orderID := uuid.New()

	tests := []struct {
		name  string
		price string
		want  int
	}{
		{"at threshold", "500000", 0},
		{"one above threshold", "500001", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anomalies := engine.Detect(orderID, []*OrderItem{testItem(uuid.New(), 1, tt.price)})
			got := findingsByCode(anomalies, RuleHighOrderValue)
			if len(got) != tt.want {
				t.Fatalf("total %s: got %d HIGH_ORDER_VALUE findings, want %d", tt.price, len(got), tt.want)
			}
			if tt.want == 1 && !got[0].SeverityScore.Equal(decimal.RequireFromString("7.5")) {
				t.Errorf("severity = %s, want 7.50", got[0].SeverityScore)
			}
		})
	}
}

func TestDetectHighOrderValueSumsAcrossItems(t *testing.T) {
	engine := NewRuleEngine(DefaultThresholds())
	orderID := uuid.New()

	items := []*OrderItem{
		testItem(uuid.New(), 3, "100000.00"),
		testItem(uuid.New(), 2, "100000.50"),
	}
	anomalies := engine.Detect(orderID, items)
	if len(findingsByCode(anomalies, RuleHighOrderValue)) != 1 {
		t.Fatalf("expected one HIGH_ORDER_VALUE finding over the summed total")
	}
}

func TestDetectCleanItems(t *testing.T) {
	engine := NewRuleEngine(DefaultThresholds())

	items := []*OrderItem{
		testItem(uuid.New(), 3, "19.99"),
		testItem(uuid.New(), 120, "4.50"),
	}
	anomalies := engine.Detect(uuid.New(), items)
	if len(anomalies) != 0 {
		t.Fatalf("got %d findings for clean items, want 0", len(anomalies))
	}
}

func TestDetectDeterministicOrdering(t *testing.T) {
	engine := NewRuleEngine(DefaultThresholds())
	orderID := uuid.New()
	productID := uuid.New()

	items := []*OrderItem{
		testItem(productID, 10_001, "0"),
		testItem(productID, 1, "600000.00"),
	}

	want := []RuleCode{
		RuleUnusualVolume,
		RuleZeroPrice,
		RuleDuplicateProduct,
		RuleHighOrderValue,
	}
	anomalies := engine.Detect(orderID, items)
	if len(anomalies) != len(want) {
		t.Fatalf("got %d findings, want %d", len(anomalies), len(want))
	}
	for i, code := range want {
		if anomalies[i].RuleCode != code {
			t.Errorf("finding %d = %s, want %s", i, anomalies[i].RuleCode, code)
		}
	}
}
