//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/app/bom/engine"
	"github.com/light-bringer/bom-service/internal/app/bom/repo"
	"github.com/light-bringer/bom-service/tests/testutil"
)

// The engine over the real store: cabinet holds 2 frames and 1 paint, a
// frame holds 1 plate and 4 bolts.
func TestEngineOverHierarchyStore(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := testutil.FrozenClock()
	store := repo.NewHierarchyStore(client, clk)

	cabinet := testutil.CreateTestAssembly(t, client, "FG-CABINET")
	frame := testutil.CreateTestAssembly(t, client, "ASM-FRAME")
	plate := testutil.CreateTestArticle(t, client, "ART-PLATE", 1200, 1800, 150)
	bolt := testutil.CreateTestArticle(t, client, "ART-BOLT", 50, 75, 1)
	paint := testutil.CreateTestArticle(t, client, "ART-PAINT", 500, 800, 10)

	testutil.LinkComponents(t, client, cabinet, frame, 2, 1, 1)
	testutil.LinkComponents(t, client, cabinet, paint, 1, 1, 2)
	testutil.LinkComponents(t, client, frame, plate, 1, 1, 1)
	testutil.LinkComponents(t, client, frame, bolt, 4, 1, 2)

	t.Run("tree walk", func(t *testing.T) {
		walker := engine.NewWalker(store)

		tree, err := walker.Tree(ctx, cabinet, 0)
		require.NoError(t, err)

		assert.Equal(t, cabinet, tree.Product.ID())
		require.Len(t, tree.Children, 2)
		assert.Equal(t, frame, tree.Children[0].Product.ID())
		assert.Equal(t, paint, tree.Children[1].Product.ID())
		assert.Equal(t, 2, tree.Depth())
		assert.Equal(t, 6, tree.Count())
	})

	t.Run("flatten", func(t *testing.T) {
		walker := engine.NewWalker(store)

		flat, err := walker.Flatten(ctx, cabinet, 0)
		require.NoError(t, err)

		require.Len(t, flat, 3)
		assert.Equal(t, 2.0, flat[plate].Total.Float64())
		assert.Equal(t, 8.0, flat[bolt].Total.Float64())
		assert.Equal(t, 1.0, flat[paint].Total.Float64())
	})

	t.Run("costing", func(t *testing.T) {
		resolver := engine.NewResolver(store)

		// frame: 12.00 + 4*0.50 = 14.00; cabinet: 2*14 + 5 = 33.00
		cost, err := resolver.EffectiveCost(ctx, cabinet, 0)
		require.NoError(t, err)
		assert.Equal(t, "33.00", cost.String())

		// frame: 18.00 + 4*0.75 = 21.00; cabinet: 2*21 + 8 = 50.00
		price, err := resolver.EffectivePrice(ctx, cabinet, 0)
		require.NoError(t, err)
		assert.Equal(t, "50.00", price.String())

		// frame: 1.5 + 4*0.01 = 1.54; cabinet: 2*1.54 + 0.1 = 3.18
		weight, err := resolver.TotalWeight(ctx, cabinet, 0)
		require.NoError(t, err)
		want, _ := domain.NewQuantity(318, 100)
		assert.True(t, weight.Equals(want))
	})

	t.Run("cycle guard sees committed edges", func(t *testing.T) {
		guard := engine.NewCycleGuard(store)

		assert.ErrorIs(t, guard.Check(ctx, frame, cabinet), domain.ErrCycleDetected)
		assert.NoError(t, guard.Check(ctx, cabinet, bolt))
	})
}
