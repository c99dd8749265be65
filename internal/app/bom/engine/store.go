// Package engine holds the composition hierarchy logic: cycle prevention,
// iterative traversal and value aggregation. It reads the hierarchy through
// the narrow HierarchyReader interface and never writes; all mutation goes
// through the usecases.
package engine

import (
	"context"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
)

// DefaultMaxDepth bounds traversals when the caller does not supply a limit.
// It is a structural safety net on top of the cycle guard: a store corrupted
// into a cycle must surface domain.ErrMaxDepthExceeded, not hang.
const DefaultMaxDepth = 10

// HierarchyReader is the read side of the product store as seen by the
// engine. Implementations must return components ordered by sequence and are
// responsible for their own consistency guarantees; the engine assumes one
// stable view of the hierarchy per call.
type HierarchyReader interface {
	// GetProduct returns the product or domain.ErrProductNotFound.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// ListComponents returns the outgoing edges of a parent, ordered by
	// sequence. A product with no components returns an empty slice.
	ListComponents(ctx context.Context, parentID string) ([]*domain.Component, error)
}

// normalizeDepth substitutes the default for non-positive limits.
func normalizeDepth(maxDepth int) int {
	if maxDepth <= 0 {
		return DefaultMaxDepth
	}
	return maxDepth
}
