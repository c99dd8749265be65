package get_costing

import (
	"context"
	"math/big"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/app/bom/engine"
)

// Request contains the product to cost and the depth bound (0 = default).
type Request struct {
	ProductID string
	MaxDepth  int
}

// Result carries every derived value of one product. Margin is nil and
// MarginDefined false when the effective price is zero.
type Result struct {
	ProductID     string
	Cost          *domain.Money
	Price         *domain.Money
	Margin        *big.Rat
	MarginDefined bool
	Weight        *domain.Quantity
}

// Query handles the costing query use case.
type Query struct {
	resolver *engine.Resolver
}

// NewQuery creates a costing query.
func NewQuery(resolver *engine.Resolver) *Query {
	return &Query{resolver: resolver}
}

// Execute resolves effective cost, price, margin and total weight in one
// pass per value. Each resolution re-reads the hierarchy, so the result
// always reflects the latest committed composition.
func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	cost, err := q.resolver.EffectiveCost(ctx, req.ProductID, req.MaxDepth)
	if err != nil {
		return nil, err
	}
	price, err := q.resolver.EffectivePrice(ctx, req.ProductID, req.MaxDepth)
	if err != nil {
		return nil, err
	}
	weight, err := q.resolver.TotalWeight(ctx, req.ProductID, req.MaxDepth)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ProductID: req.ProductID,
		Cost:      cost,
		Price:     price,
		Weight:    weight,
	}
	if !price.IsZero() {
		result.Margin = new(big.Rat).Quo(price.Subtract(cost).Rat(), price.Rat())
		result.MarginDefined = true
	}
	return result, nil
}
