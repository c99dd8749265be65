package get_where_used

import (
	"context"

	"github.com/light-bringer/bom-service/internal/app/bom/contracts"
	"github.com/light-bringer/bom-service/internal/app/bom/domain"
)

// Request contains the child product to look up.
type Request struct {
	ChildID string
}

// Usage is one incoming edge: the consuming parent and the edge itself.
type Usage struct {
	Parent    *domain.Product
	Component *domain.Component
}

// Query handles the where-used query: which assemblies consume a product
// directly.
type Query struct {
	components contracts.ComponentRepository
	products   contracts.ProductRepository
}

// NewQuery creates a where-used query.
func NewQuery(components contracts.ComponentRepository, products contracts.ProductRepository) *Query {
	return &Query{components: components, products: products}
}

// Execute lists the direct parents of the product.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*Usage, error) {
	edges, err := q.components.ListByChild(ctx, req.ChildID)
	if err != nil {
		return nil, err
	}

	usages := make([]*Usage, 0, len(edges))
	for _, edge := range edges {
		parent, err := q.products.GetByID(ctx, edge.ParentID())
		if err != nil {
			return nil, err
		}
		usages = append(usages, &Usage{Parent: parent, Component: edge})
	}
	return usages, nil
}
