package m_component

// Field name constants for the product_components table.
const (
	TableName = "product_components"

	ComponentID         = "component_id"
	ParentID            = "parent_id"
	ChildID             = "child_id"
	QuantityNumerator   = "quantity_numerator"
	QuantityDenominator = "quantity_denominator"
	Sequence            = "sequence"
	CreatedAt           = "created_at"
	UpdatedAt           = "updated_at"
)

// Columns lists every column of the table in insert order.
var Columns = []string{
	ComponentID,
	ParentID,
	ChildID,
	QuantityNumerator,
	QuantityDenominator,
	Sequence,
	CreatedAt,
	UpdatedAt,
}
