package engine

import (
	"context"
	"fmt"
	"math/big"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
)

// Resolver computes effective cost, price and weight over the hierarchy.
// All three share one reduction: a node in manual mode, a leaf-typed node,
// and a node without components resolve to their stored value; any other
// node resolves to the quantity-weighted sum of its direct components.
//
// The resolver holds no state between calls. The memo table that keeps a
// shared sub-assembly from being recomputed per path lives for exactly one
// resolution, so a caller can never observe a stale aggregate after a
// mutation.
type Resolver struct {
	store HierarchyReader
}

// NewResolver creates a Resolver over the given reader.
func NewResolver(store HierarchyReader) *Resolver {
	return &Resolver{store: store}
}

// EffectiveCost resolves the cost of one unit of the product.
func (r *Resolver) EffectiveCost(ctx context.Context, productID string, maxDepth int) (*domain.Money, error) {
	rat, err := r.resolve(ctx, productID, maxDepth, func(p *domain.Product) *big.Rat {
		return p.ManualCost().Rat()
	})
	if err != nil {
		return nil, err
	}
	return domain.MoneyFromRat(rat), nil
}

// EffectivePrice resolves the selling price of one unit of the product.
func (r *Resolver) EffectivePrice(ctx context.Context, productID string, maxDepth int) (*domain.Money, error) {
	rat, err := r.resolve(ctx, productID, maxDepth, func(p *domain.Product) *big.Rat {
		return p.ManualPrice().Rat()
	})
	if err != nil {
		return nil, err
	}
	return domain.MoneyFromRat(rat), nil
}

// TotalWeight resolves the weight of one unit of the product.
func (r *Resolver) TotalWeight(ctx context.Context, productID string, maxDepth int) (*domain.Quantity, error) {
	rat, err := r.resolve(ctx, productID, maxDepth, func(p *domain.Product) *big.Rat {
		return p.UnitWeight().Rat()
	})
	if err != nil {
		return nil, err
	}
	return domain.QuantityFromRat(rat), nil
}

// Margin returns (price - cost) / price as a ratio. The margin is undefined
// when the effective price is zero; that is reported through the second
// return value, never silently mapped to zero.
func (r *Resolver) Margin(ctx context.Context, productID string, maxDepth int) (*big.Rat, bool, error) {
	cost, err := r.EffectiveCost(ctx, productID, maxDepth)
	if err != nil {
		return nil, false, err
	}
	price, err := r.EffectivePrice(ctx, productID, maxDepth)
	if err != nil {
		return nil, false, err
	}
	if price.IsZero() {
		return nil, false, nil
	}
	margin := new(big.Rat).Quo(price.Subtract(cost).Rat(), price.Rat())
	return margin, true, nil
}

// resolveFrame is one pending node of a resolution walk. A frame is pushed
// once unexpanded to discover its components, then again expanded to combine
// their memoized values.
type resolveFrame struct {
	productID string
	depth     int
	expanded  bool
	edges     []*domain.Component
}

// resolve runs the shared reduction iteratively. base extracts the stored
// value used for manual-mode nodes and leaves. The same depth discipline as
// the Walker applies, so a corrupted (cyclic) store fails with
// domain.ErrMaxDepthExceeded instead of spinning.
func (r *Resolver) resolve(ctx context.Context, rootID string, maxDepth int, base func(*domain.Product) *big.Rat) (*big.Rat, error) {
	maxDepth = normalizeDepth(maxDepth)

	memo := make(map[string]*big.Rat)
	stack := []resolveFrame{{productID: rootID, depth: 0}}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if fr.expanded {
			sum := new(big.Rat)
			for _, edge := range fr.edges {
				childValue, ok := memo[edge.ChildID()]
				if !ok {
					return nil, fmt.Errorf("component %s of %s resolved out of order", edge.ChildID(), fr.productID)
				}
				sum.Add(sum, new(big.Rat).Mul(edge.Quantity().Rat(), childValue))
			}
			memo[fr.productID] = sum
			continue
		}

		if _, done := memo[fr.productID]; done {
			continue
		}

		product, err := r.store.GetProduct(ctx, fr.productID)
		if err != nil {
			return nil, err
		}

		// Base case: manual override, leaf type, or no components.
		if product.PriceMode() == domain.PriceModeManual || !product.CanOwnComponents() {
			memo[fr.productID] = base(product)
			continue
		}
		edges, err := r.store.ListComponents(ctx, fr.productID)
		if err != nil {
			return nil, err
		}
		if len(edges) == 0 {
			memo[fr.productID] = base(product)
			continue
		}

		if fr.depth+1 > maxDepth {
			return nil, fmt.Errorf("resolving below %q at depth %d: %w", fr.productID, fr.depth, domain.ErrMaxDepthExceeded)
		}

		stack = append(stack, resolveFrame{
			productID: fr.productID,
			depth:     fr.depth,
			expanded:  true,
			edges:     edges,
		})
		for i := len(edges) - 1; i >= 0; i-- {
			stack = append(stack, resolveFrame{
				productID: edges[i].ChildID(),
				depth:     fr.depth + 1,
			})
		}
	}

	result, ok := memo[rootID]
	if !ok {
		return nil, fmt.Errorf("resolution of %q produced no value", rootID)
	}
	return new(big.Rat).Set(result), nil
}
