package m_component

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe mutations for the product_components table.
type Model struct{}

// NewModel creates a Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut builds the mutation inserting a component edge.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.ComponentID,
			data.ParentID,
			data.ChildID,
			data.QuantityNumerator,
			data.QuantityDenominator,
			data.Sequence,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut builds the mutation updating specific edge columns. The
// UpdatedAt timestamp is always refreshed.
func (m *Model) UpdateMut(componentID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ComponentID)
	values = append(values, componentID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut builds the mutation removing a component edge.
func (m *Model) DeleteMut(componentID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{componentID})
}
