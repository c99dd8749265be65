//go:build integration

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_costing"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/update_pricing"
)

func TestManualOverridePinsCosting(t *testing.T) {
	e, cleanup := newEnv(t)
	defer cleanup()

	part := e.createArticle(t, "ART-1", 1000, 1500, 0)
	asm := e.createAssembly(t, "ASM-1")
	e.attach(t, asm, part, 2, 1, 1)

	// Auto mode derives from components.
	auto, err := e.costing.Execute(e.ctx, &get_costing.Request{ProductID: asm})
	require.NoError(t, err)
	assert.Equal(t, "20.00", auto.Cost.String())

	// Pin the assembly to manual values.
	manual := domain.PriceModeManual
	err = e.updatePricing.Execute(e.ctx, &update_pricing.Request{
		ProductID:   asm,
		PriceMode:   &manual,
		ManualCost:  money(t, 9900, 100),
		ManualPrice: money(t, 12900, 100),
	})
	require.NoError(t, err)

	pinned, err := e.costing.Execute(e.ctx, &get_costing.Request{ProductID: asm})
	require.NoError(t, err)
	assert.Equal(t, "99.00", pinned.Cost.String())
	assert.Equal(t, "129.00", pinned.Price.String())

	// Switching back to auto picks the components up again.
	autoMode := domain.PriceModeAuto
	err = e.updatePricing.Execute(e.ctx, &update_pricing.Request{
		ProductID: asm,
		PriceMode: &autoMode,
	})
	require.NoError(t, err)

	restored, err := e.costing.Execute(e.ctx, &get_costing.Request{ProductID: asm})
	require.NoError(t, err)
	assert.Equal(t, "20.00", restored.Cost.String())
}

func TestUpdatePricing_ValidationAndGuards(t *testing.T) {
	e, cleanup := newEnv(t)
	defer cleanup()

	art := e.createArticle(t, "ART-1", 100, 200, 0)

	t.Run("unknown product", func(t *testing.T) {
		err := e.updatePricing.Execute(e.ctx, &update_pricing.Request{
			ProductID:  "missing",
			ManualCost: money(t, 100, 100),
		})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("negative cost rejected", func(t *testing.T) {
		neg, err := domain.NewMoney(-100, 100)
		require.NoError(t, err)
		err = e.updatePricing.Execute(e.ctx, &update_pricing.Request{
			ProductID:  art,
			ManualCost: neg,
		})
		assert.ErrorIs(t, err, domain.ErrNegativeCost)
	})

	t.Run("archived product rejected", func(t *testing.T) {
		require.NoError(t, e.archiveProduct.Execute(e.ctx, art))
		err := e.updatePricing.Execute(e.ctx, &update_pricing.Request{
			ProductID:  art,
			ManualCost: money(t, 100, 100),
		})
		assert.ErrorIs(t, err, domain.ErrCannotModifyArchived)
	})
}

func TestZeroPriceHasUndefinedMargin(t *testing.T) {
	e, cleanup := newEnv(t)
	defer cleanup()

	freebie := e.createArticle(t, "ART-FREE", 100, 0, 0)

	result, err := e.costing.Execute(e.ctx, &get_costing.Request{ProductID: freebie})
	require.NoError(t, err)
	assert.False(t, result.MarginDefined)
	assert.Nil(t, result.Margin)
}
