package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type stubRepo struct {
	Repository
	products []*Product
	requests [][]string
}

func (s *stubRepo) FindBySKUs(ctx context.Context, tenantID uuid.UUID, skus []string) ([]*Product, error) {
	s.requests = append(s.requests, skus)
	requested := make(map[string]bool, len(skus))
	for _, sku := range skus {
		requested[sku] = true
	}
	found := make([]*Product, 0)
	for _, p := range s.products {
		if requested[p.SKU] {
			found = append(found, p)
		}
	}
	return found, nil
}

func TestResolveSKUs(t *testing.T) {
	repo := &stubRepo{products: []*Product{
		{ID: uuid.New(), SKU: "A", Price: decimal.RequireFromString("1.00")},
		{ID: uuid.New(), SKU: "B", Price: decimal.RequireFromString("2.00")},
	}}
	resolver := NewResolver(repo)

	resolved, err := resolver.ResolveSKUs(context.Background(), uuid.New(), []string{"A", "B", "A", "MISSING"})
	if err != nil {
		t.Fatalf("ResolveSKUs failed: %v", err)
	}

	if len(resolved) != 2 {
		t.Fatalf("got %d resolved products, want 2", len(resolved))
	}
	if _, ok := resolved["MISSING"]; ok {
		t.Errorf("unknown SKU present in result; absence should signal it instead")
	}
	if len(repo.requests) != 1 {
		t.Fatalf("got %d lookups, want one batched lookup", len(repo.requests))
	}
	if len(repo.requests[0]) != 3 {
		t.Errorf("lookup requested %d SKUs, want 3 after deduplication", len(repo.requests[0]))
	}
}

func TestResolveSKUsEmptyInput(t *testing.T) {
	repo := &stubRepo{}
	resolver := NewResolver(repo)

	resolved, err := resolver.ResolveSKUs(context.Background(), uuid.New(), nil)
	if err != nil {
		t.Fatalf("ResolveSKUs failed: %v", err)
	}
	if len(resolved) != 0 {
		t.Errorf("got %d resolved products for empty input, want 0", len(resolved))
	}
	if len(repo.requests) != 0 {
		t.Errorf("lookup performed for empty input")
	}
}
