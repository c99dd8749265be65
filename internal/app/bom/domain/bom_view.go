package domain

// BOMNode is one node of the tree view of a hierarchy. OwnQuantity is the
// multiplicity on the edge from this node's parent (1 for the root);
// Children mirror the stored component edges in sequence order.
type BOMNode struct {
	Product     *Product
	OwnQuantity *Quantity
	Children    []*BOMNode
}

// Depth returns the number of edges on the longest path below the node.
// A leaf has depth 0.
func (n *BOMNode) Depth() int {
	max := -1
	for _, child := range n.Children {
		if d := child.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Count returns the total number of nodes in the subtree, the node included.
func (n *BOMNode) Count() int {
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}

// FlatLine is one entry of a flattened BOM: a leaf product and the total
// quantity of it consumed by one unit of the root, summed over every path
// that reaches it.
type FlatLine struct {
	Product *Product
	Total   *Quantity
}

// FlatBOM maps leaf product id to its aggregated requirement.
type FlatBOM map[string]*FlatLine

// Accumulate merges qty into the line for the given leaf, creating the line
// on first sight.
func (f FlatBOM) Accumulate(p *Product, qty *Quantity) {
	if line, ok := f[p.ID()]; ok {
		line.Total = line.Total.Add(qty)
		return
	}
	f[p.ID()] = &FlatLine{Product: p, Total: qty.Copy()}
}
