package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data is the database model for the products table. Monetary values and the
// unit weight are stored as int64 numerator/denominator pairs.
type Data struct {
	ProductID              string           `spanner:"product_id"`
	Code                   string           `spanner:"code"`
	Name                   string           `spanner:"name"`
	ProductType            string           `spanner:"product_type"`
	PriceMode              string           `spanner:"price_mode"`
	ManualCostNumerator    int64            `spanner:"manual_cost_numerator"`
	ManualCostDenominator  int64            `spanner:"manual_cost_denominator"`
	ManualPriceNumerator   int64            `spanner:"manual_price_numerator"`
	ManualPriceDenominator int64            `spanner:"manual_price_denominator"`
	UnitWeightNumerator    int64            `spanner:"unit_weight_numerator"`
	UnitWeightDenominator  int64            `spanner:"unit_weight_denominator"`
	IsActive               bool             `spanner:"is_active"`
	Version                int64            `spanner:"version"`
	CreatedAt              time.Time        `spanner:"created_at"`
	UpdatedAt              time.Time        `spanner:"updated_at"`
	ArchivedAt             spanner.NullTime `spanner:"archived_at"`
}
