package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe mutations for the products table.
type Model struct{}

// NewModel creates a Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut builds the mutation inserting a product row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.ProductID,
			data.Code,
			data.Name,
			data.ProductType,
			data.PriceMode,
			data.ManualCostNumerator,
			data.ManualCostDenominator,
			data.ManualPriceNumerator,
			data.ManualPriceDenominator,
			data.UnitWeightNumerator,
			data.UnitWeightDenominator,
			data.IsActive,
			data.Version,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
			data.ArchivedAt,
		},
	)
}

// UpdateMut builds the mutation updating specific product columns. The
// UpdatedAt timestamp is always refreshed.
func (m *Model) UpdateMut(productID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ProductID)
	values = append(values, productID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut builds the mutation hard-deleting a product row.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
