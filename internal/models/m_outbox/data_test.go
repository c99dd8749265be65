package m_outbox

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
		"evt-1",
		"product.created",
		"prod-1",
		spanner.NullJSON{Valid: true, Value: map[string]interface{}{"code": "ART-BOLT"}},
		StatusPending,
		now,
		spanner.NullTime{},
		int64(0),
	})
	require.NoError(t, err)

	var data Data
	require.NoError(t, row.ToStruct(&data))

	assert.Equal(t, "evt-1", data.EventID)
	assert.Equal(t, "product.created", data.EventType)
	assert.Equal(t, "prod-1", data.AggregateID)
	assert.True(t, data.Payload.Valid)
	assert.Equal(t, StatusPending, data.Status)
	assert.False(t, data.ProcessedAt.Valid)
	assert.Equal(t, int64(0), data.RetryCount)
}
