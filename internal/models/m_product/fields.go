package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID             = "product_id"
	Code                  = "code"
	Name                  = "name"
	ProductType           = "product_type"
	PriceMode             = "price_mode"
	ManualCostNumerator   = "manual_cost_numerator"
	ManualCostDenominator = "manual_cost_denominator"
	ManualPriceNumerator  = "manual_price_numerator"
	ManualPriceDenominator = "manual_price_denominator"
	UnitWeightNumerator   = "unit_weight_numerator"
	UnitWeightDenominator = "unit_weight_denominator"
	IsActive              = "is_active"
	Version               = "version"
	CreatedAt             = "created_at"
	UpdatedAt             = "updated_at"
	ArchivedAt            = "archived_at"
)

// Columns lists every column of the table in insert order.
var Columns = []string{
	ProductID,
	Code,
	Name,
	ProductType,
	PriceMode,
	ManualCostNumerator,
	ManualCostDenominator,
	ManualPriceNumerator,
	ManualPriceDenominator,
	UnitWeightNumerator,
	UnitWeightDenominator,
	IsActive,
	Version,
	CreatedAt,
	UpdatedAt,
	ArchivedAt,
}
