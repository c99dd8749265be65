package m_component

import "time"

// Data is the database model for the product_components table. The edge
// quantity is stored as an int64 numerator/denominator pair.
type Data struct {
	ComponentID         string    `spanner:"component_id"`
	ParentID            string    `spanner:"parent_id"`
	ChildID             string    `spanner:"child_id"`
	QuantityNumerator   int64     `spanner:"quantity_numerator"`
	QuantityDenominator int64     `spanner:"quantity_denominator"`
	Sequence            int64     `spanner:"sequence"`
	CreatedAt           time.Time `spanner:"created_at"`
	UpdatedAt           time.Time `spanner:"updated_at"`
}
