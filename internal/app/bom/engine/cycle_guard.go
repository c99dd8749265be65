package engine

import (
	"context"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
)

// CycleGuard decides whether a proposed parent→child edge would close a loop
// in the hierarchy. It must run before every component insert or parent/child
// reassignment; callers are expected to hold it and the subsequent write in
// the same transaction so no concurrent mutation lands between check and
// insert.
type CycleGuard struct {
	store HierarchyReader
}

// NewCycleGuard creates a CycleGuard over the given reader.
func NewCycleGuard(store HierarchyReader) *CycleGuard {
	return &CycleGuard{store: store}
}

// WouldCreateCycle reports whether adding parentID→childID would make the
// graph cyclic: either the edge is a self-loop, or parentID is already
// reachable from childID through existing edges.
//
// The walk is an iterative depth-first scan over the subtree rooted at the
// proposed child, O(V+E). The visited set guarantees termination even if the
// store already holds a cycle.
func (g *CycleGuard) WouldCreateCycle(ctx context.Context, parentID, childID string) (bool, error) {
	if parentID == childID {
		return true, nil
	}

	visited := map[string]struct{}{childID: {}}
	stack := []string{childID}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		edges, err := g.store.ListComponents(ctx, current)
		if err != nil {
			return false, err
		}

		for _, edge := range edges {
			next := edge.ChildID()
			if next == parentID {
				return true, nil
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			stack = append(stack, next)
		}
	}

	return false, nil
}

// Check is WouldCreateCycle expressed as an error: it returns
// domain.ErrCycleDetected when the edge must be rejected.
func (g *CycleGuard) Check(ctx context.Context, parentID, childID string) error {
	if parentID == childID {
		return domain.ErrSelfReference
	}
	cyclic, err := g.WouldCreateCycle(ctx, parentID, childID)
	if err != nil {
		return err
	}
	if cyclic {
		return domain.ErrCycleDetected
	}
	return nil
}
