package m_component

import (
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Decoding goes through row.ToStruct, which matches struct fields to columns
// by spanner tag. A missing or misspelled tag breaks every read of the table.
func TestData_DecodesFromRow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	row, err := spanner.NewRow(Columns, []interface{}{
		"comp-1",
		"parent-1",
		"child-1",
		int64(3), int64(2),
		int64(7),
		now,
		now,
	})
	require.NoError(t, err)

	var data Data
	require.NoError(t, row.ToStruct(&data))

	assert.Equal(t, "comp-1", data.ComponentID)
	assert.Equal(t, "parent-1", data.ParentID)
	assert.Equal(t, "child-1", data.ChildID)
	assert.Equal(t, int64(3), data.QuantityNumerator)
	assert.Equal(t, int64(2), data.QuantityDenominator)
	assert.Equal(t, int64(7), data.Sequence)
	assert.True(t, data.UpdatedAt.Equal(now))
}
