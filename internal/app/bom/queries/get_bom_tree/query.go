package get_bom_tree

import (
	"context"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/app/bom/engine"
)

// Request contains the root product and the depth bound (0 = default).
type Request struct {
	RootID   string
	MaxDepth int
}

// Query handles the BOM tree query use case.
type Query struct {
	walker *engine.Walker
}

// NewQuery creates a BOM tree query.
func NewQuery(walker *engine.Walker) *Query {
	return &Query{walker: walker}
}

// Execute builds the nested BOM view rooted at the requested product.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.BOMNode, error) {
	return q.walker.Tree(ctx, req.RootID, req.MaxDepth)
}
