package engine

import (
	"context"
	"fmt"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
)

// Walker is the shared traversal primitive under every hierarchy view and
// aggregate. Traversal is depth-first over an explicit frame stack, never
// recursive, so depth is bounded by maxDepth and memory rather than the call
// stack.
type Walker struct {
	store HierarchyReader
}

// NewWalker creates a Walker over the given reader.
func NewWalker(store HierarchyReader) *Walker {
	return &Walker{store: store}
}

// treeFrame is one pending node of a tree-mode walk.
type treeFrame struct {
	productID string
	depth     int
	quantity  *domain.Quantity
	parent    *domain.BOMNode
}

// Tree builds the nested view of the hierarchy rooted at rootID, children in
// sequence order. maxDepth <= 0 selects DefaultMaxDepth; a hierarchy deeper
// than the limit fails with domain.ErrMaxDepthExceeded.
func (w *Walker) Tree(ctx context.Context, rootID string, maxDepth int) (*domain.BOMNode, error) {
	maxDepth = normalizeDepth(maxDepth)

	var root *domain.BOMNode
	stack := []treeFrame{{productID: rootID, depth: 0, quantity: domain.OneQuantity()}}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		product, err := w.store.GetProduct(ctx, fr.productID)
		if err != nil {
			return nil, err
		}
		edges, err := w.store.ListComponents(ctx, fr.productID)
		if err != nil {
			return nil, err
		}

		node := &domain.BOMNode{
			Product:     product,
			OwnQuantity: fr.quantity,
			Children:    make([]*domain.BOMNode, 0, len(edges)),
		}
		if fr.parent == nil {
			root = node
		} else {
			fr.parent.Children = append(fr.parent.Children, node)
		}

		if len(edges) == 0 {
			continue
		}
		if fr.depth+1 > maxDepth {
			return nil, fmt.Errorf("walking below %q at depth %d: %w", fr.productID, fr.depth, domain.ErrMaxDepthExceeded)
		}

		// Push in reverse so siblings pop in sequence order.
		for i := len(edges) - 1; i >= 0; i-- {
			stack = append(stack, treeFrame{
				productID: edges[i].ChildID(),
				depth:     fr.depth + 1,
				quantity:  edges[i].Quantity(),
				parent:    node,
			})
		}
	}

	return root, nil
}

// flatFrame is one pending node of a flatten-mode walk. accumulated is the
// product of edge quantities along this particular path from the root.
type flatFrame struct {
	productID   string
	depth       int
	accumulated *domain.Quantity
}

// Flatten reduces the hierarchy rooted at rootID to its leaves. Each leaf's
// total is the sum over all root-to-leaf paths of the product of edge
// quantities along the path, so a part consumed under several assemblies
// collapses into one line.
func (w *Walker) Flatten(ctx context.Context, rootID string, maxDepth int) (domain.FlatBOM, error) {
	maxDepth = normalizeDepth(maxDepth)

	flat := make(domain.FlatBOM)
	stack := []flatFrame{{productID: rootID, depth: 0, accumulated: domain.OneQuantity()}}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		product, err := w.store.GetProduct(ctx, fr.productID)
		if err != nil {
			return nil, err
		}
		edges, err := w.store.ListComponents(ctx, fr.productID)
		if err != nil {
			return nil, err
		}

		if len(edges) == 0 {
			flat.Accumulate(product, fr.accumulated)
			continue
		}
		if fr.depth+1 > maxDepth {
			return nil, fmt.Errorf("walking below %q at depth %d: %w", fr.productID, fr.depth, domain.ErrMaxDepthExceeded)
		}

		for i := len(edges) - 1; i >= 0; i-- {
			stack = append(stack, flatFrame{
				productID:   edges[i].ChildID(),
				depth:       fr.depth + 1,
				accumulated: fr.accumulated.Mul(edges[i].Quantity()),
			})
		}
	}

	return flat, nil
}

// Depth returns the maximum depth reached by a tree-mode walk from rootID,
// 0 for a leaf.
func (w *Walker) Depth(ctx context.Context, rootID string, maxDepth int) (int, error) {
	tree, err := w.Tree(ctx, rootID, maxDepth)
	if err != nil {
		return 0, err
	}
	return tree.Depth(), nil
}
