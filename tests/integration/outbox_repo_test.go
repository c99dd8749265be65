//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/app/bom/repo"
	"github.com/light-bringer/bom-service/internal/models/m_outbox"
	"github.com/light-bringer/bom-service/tests/testutil"
)

func TestOutboxRepo_EnrichEvent(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	repository := repo.NewOutboxRepo(client)

	event := &domain.ComponentAddedEvent{
		ComponentID: "comp-1",
		ParentID:    "parent-1",
		ChildID:     "child-1",
		Quantity:    "4.0000",
		AddedAt:     time.Now(),
	}

	enriched := repository.EnrichEvent(event, `{"component_id":"comp-1"}`)

	assert.NotEmpty(t, enriched.EventID)
	assert.Equal(t, "component.added", enriched.EventType)
	assert.Equal(t, "parent-1", enriched.AggregateID)
	assert.Equal(t, m_outbox.StatusPending, enriched.Status)
}

func TestOutboxRepo_InsertMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewOutboxRepo(client)

	event := &domain.ProductCreatedEvent{
		ProductID:   "prod-1",
		Code:        "ART-1",
		Name:        "Widget",
		ProductType: "article",
		PriceMode:   "manual",
		CreatedAt:   time.Now(),
	}

	enriched := repository.EnrichEvent(event, `{"product_id":"prod-1"}`)
	_, err := client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(enriched)})
	require.NoError(t, err)

	testutil.AssertRowCount(t, client, "outbox_events", 1)

	iter := client.Single().Query(ctx, spanner.Statement{
		SQL: "SELECT event_type, aggregate_id, status, retry_count FROM outbox_events",
	})
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err)

	var eventType, aggregateID, status string
	var retryCount int64
	require.NoError(t, row.Columns(&eventType, &aggregateID, &status, &retryCount))

	assert.Equal(t, "product.created", eventType)
	assert.Equal(t, "prod-1", aggregateID)
	assert.Equal(t, m_outbox.StatusPending, status)
	assert.Zero(t, retryCount)
}
