package get_flat_bom

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

// Query handles the flattened BOM query use case.
type Query struct {
	walker *engine.Walker
}

// NewQuery creates a flat BOM query.
func NewQuery(walker *engine.Walker) *Query {
	return &Query{walker: walker}
}

// Execute reduces the hierarchy to per-leaf aggregated quantities.
func (q *Query) Execute(ctx context.Context, req *Request) (domain.FlatBOM, error) {
	return q.walker.Flatten(ctx, req.RootID, req.MaxDepth)
}
