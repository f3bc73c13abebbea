package catalog

import (
	"context"

	"github.com/google/uuid"

	"ordervoice/order-api/internal/utils/platformerrors"
)

// Resolver maps requested SKUs onto the tenant's catalog.
type Resolver struct {
	repo Repository
}

// NewResolver creates a new catalog resolver
func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// ResolveSKUs resolves the given SKUs with one batched lookup and returns a
// SKU -> Product mapping. Unknown SKUs are missing from the map; the caller
// decides what absence means.
func (r *Resolver) ResolveSKUs(ctx context.Context, tenantID uuid.UUID, skus []string) (map[string]*Product, error) {
	distinct := make([]string, 0, len(skus))
	seen := make(map[string]struct{}, len(skus))
	for _, sku := range skus {
		if _, ok := seen[sku]; ok {
			continue
		}
		seen[sku] = struct{}{}
		distinct = append(distinct, sku)
	}

	if len(distinct) == 0 {
		return map[string]*Product{}, nil
	}

	products, err := r.repo.FindBySKUs(ctx, tenantID, distinct)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to resolve SKUs")
	}

	resolved := make(map[string]*Product, len(products))
	for _, p := range products {
		resolved[p.SKU] = p
	}
	return resolved, nil
}
