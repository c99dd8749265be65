//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/bom-service/internal/app/bom/repo"
	"github.com/light-bringer/bom-service/internal/models/m_product"
	"github.com/light-bringer/bom-service/internal/pkg/committer"
	"github.com/light-bringer/bom-service/tests/testutil"
)

func TestCommitter_Apply(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	comm := committer.NewCommitter(client)

	t.Run("empty plan is a no-op", func(t *testing.T) {
		require.NoError(t, comm.Apply(ctx, committer.NewPlan()))
	})

	t.Run("applies collected mutations atomically", func(t *testing.T) {
		plan := committer.NewPlan()
		model := m_product.NewModel()
		now := time.Now()

		for _, id := range []string{"p1", "p2"} {
			plan.Add(model.InsertMut(&m_product.Data{
				ProductID:              id,
				Code:                   "CODE-" + id,
				Name:                   "Product " + id,
				ProductType:            "article",
				PriceMode:              "manual",
				ManualCostDenominator:  1,
				ManualPriceDenominator: 1,
				UnitWeightDenominator:  1,
				IsActive:               true,
				Version:                1,
				CreatedAt:              now,
				UpdatedAt:              now,
			}))
		}

		require.NoError(t, comm.Apply(ctx, plan))
		testutil.AssertRowCount(t, client, "products", 2)
	})
}

func TestCommitter_ApplyWithVersionCheck(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := testutil.FrozenClock()
	comm := committer.NewCommitter(client)
	products := repo.NewProductRepo(client, clk)

	productID := testutil.CreateTestArticle(t, client, "ART-1", 100, 200, 0)

	product, err := products.GetByID(ctx, productID)
	require.NoError(t, err)
	staleVersion := product.Version()

	t.Run("matching version commits", func(t *testing.T) {
		require.NoError(t, product.SetName("Renamed"))

		plan := committer.NewPlan()
		require.NoError(t, plan.AddErr(products.UpdateMut(product)))

		err := comm.ApplyWithVersionCheck(ctx, m_product.TableName, productID, staleVersion, plan)
		require.NoError(t, err)

		updated, err := products.GetByID(ctx, productID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name())
		assert.Equal(t, staleVersion+1, updated.Version())
	})

	t.Run("stale version is rejected", func(t *testing.T) {
		// The row moved on; a plan built against the old version must
		// not land.
		require.NoError(t, product.SetName("Lost update"))

		plan := committer.NewPlan()
		require.NoError(t, plan.AddErr(products.UpdateMut(product)))

		err := comm.ApplyWithVersionCheck(ctx, m_product.TableName, productID, staleVersion, plan)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "version mismatch")

		current, err := products.GetByID(ctx, productID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", current.Name())
	})
}

func TestCommitter_InTransaction(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	comm := committer.NewCommitter(client)

	t.Run("buffered writes commit together", func(t *testing.T) {
		model := m_product.NewModel()
		now := time.Now()

		err := comm.InTransaction(ctx, func(_ context.Context, txn *spanner.ReadWriteTransaction) error {
			return txn.BufferWrite([]*spanner.Mutation{
				model.InsertMut(&m_product.Data{
					ProductID:              "tx-1",
					Code:                   "TX-1",
					Name:                   "Tx product",
					ProductType:            "article",
					PriceMode:              "manual",
					ManualCostDenominator:  1,
					ManualPriceDenominator: 1,
					UnitWeightDenominator:  1,
					IsActive:               true,
					Version:                1,
					CreatedAt:              now,
					UpdatedAt:              now,
				}),
			})
		})
		require.NoError(t, err)
		testutil.AssertRowCount(t, client, "products", 1)
	})

	t.Run("callback error rolls back", func(t *testing.T) {
		sentinel := assert.AnError

		err := comm.InTransaction(ctx, func(context.Context, *spanner.ReadWriteTransaction) error {
			return sentinel
		})
		assert.ErrorIs(t, err, sentinel)
	})
}
