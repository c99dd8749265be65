//go:build integration

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_bom_tree"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_costing"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_flat_bom"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_where_used"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/add_component"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/update_component_quantity"
	"github.com/light-bringer/bom-service/tests/testutil"
)

func TestBuildAndResolveHierarchy(t *testing.T) {
	e, cleanup := newEnv(t)
	defer cleanup()

	bolt := e.createArticle(t, "ART-BOLT", 50, 75, 1)
	plate := e.createArticle(t, "ART-PLATE", 1200, 1800, 150)
	frame := e.createAssembly(t, "ASM-FRAME")
	cabinet := e.createAssembly(t, "FG-CABINET")

	e.attach(t, frame, plate, 1, 1, 1)
	e.attach(t, frame, bolt, 4, 1, 2)
	e.attach(t, cabinet, frame, 2, 1, 1)

	tree, err := e.bomTree.Execute(e.ctx, &get_bom_tree.Request{RootID: cabinet})
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Depth())
	assert.Equal(t, 4, tree.Count())

	flat, err := e.flatBOM.Execute(e.ctx, &get_flat_bom.Request{RootID: cabinet})
	require.NoError(t, err)
	require.Len(t, flat, 2)
	assert.Equal(t, 2.0, flat[plate].Total.Float64())
	assert.Equal(t, 8.0, flat[bolt].Total.Float64())

	// frame: 12 + 4*0.5 = 14; cabinet: 2*14 = 28
	costing, err := e.costing.Execute(e.ctx, &get_costing.Request{ProductID: cabinet})
	require.NoError(t, err)
	assert.Equal(t, "28.00", costing.Cost.String())
	assert.Equal(t, "42.00", costing.Price.String())
	require.True(t, costing.MarginDefined)
	assert.Equal(t, "0.33", costing.Margin.FloatString(2))

	// Every mutation left an outbox trace: 4 created + 3 added.
	testutil.AssertRowCount(t, e.client, "outbox_events", 7)
}

func TestCycleRejection(t *testing.T) {
	e, cleanup := newEnv(t)
	defer cleanup()

	a := e.createAssembly(t, "ASM-A")
	b := e.createAssembly(t, "ASM-B")
	c := e.createAssembly(t, "ASM-C")

	e.attach(t, a, b, 1, 1, 1)
	e.attach(t, b, c, 1, 1, 1)

	_, err := e.addComponent.Execute(e.ctx, &add_component.Request{
		ParentID: c,
		ChildID:  a,
		Quantity: qty(t, 1, 1),
	})
	assert.ErrorIs(t, err, domain.ErrCycleDetected)

	// The rejected edge left nothing behind.
	testutil.AssertRowCount(t, e.client, "product_components", 2)
}

func TestLeafCannotOwnComponents(t *testing.T) {
	e, cleanup := newEnv(t)
	defer cleanup()

	article := e.createArticle(t, "ART-1", 100, 200, 0)
	other := e.createArticle(t, "ART-2", 100, 200, 0)

	_, err := e.addComponent.Execute(e.ctx, &add_component.Request{
		ParentID: article,
		ChildID:  other,
		Quantity: qty(t, 1, 1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidProductType)
}

func TestQuantityUpdateReflectsInCosting(t *testing.T) {
	e, cleanup := newEnv(t)
	defer cleanup()

	part := e.createArticle(t, "ART-1", 1000, 1000, 0)
	asm := e.createAssembly(t, "ASM-1")
	componentID := e.attach(t, asm, part, 2, 1, 1)

	before, err := e.costing.Execute(e.ctx, &get_costing.Request{ProductID: asm})
	require.NoError(t, err)
	assert.Equal(t, "20.00", before.Cost.String())

	_, err = e.updateQuantity.Execute(e.ctx, &update_component_quantity.Request{
		ComponentID: componentID,
		Quantity:    qty(t, 5, 1),
	})
	require.NoError(t, err)

	after, err := e.costing.Execute(e.ctx, &get_costing.Request{ProductID: asm})
	require.NoError(t, err)
	assert.Equal(t, "50.00", after.Cost.String())
}

func TestRemoveComponentPrunesTree(t *testing.T) {
	e, cleanup := newEnv(t)
	defer cleanup()

	part := e.createArticle(t, "ART-1", 1000, 1000, 0)
	asm := e.createAssembly(t, "ASM-1")
	componentID := e.attach(t, asm, part, 3, 1, 1)

	require.NoError(t, e.removeComponent.Execute(e.ctx, componentID))

	flat, err := e.flatBOM.Execute(e.ctx, &get_flat_bom.Request{RootID: asm})
	require.NoError(t, err)
	require.Len(t, flat, 1)
	assert.Contains(t, flat, asm)
}

func TestArchiveBlocksComposition(t *testing.T) {
	e, cleanup := newEnv(t)
	defer cleanup()

	part := e.createArticle(t, "ART-1", 100, 100, 0)
	asm := e.createAssembly(t, "ASM-1")

	require.NoError(t, e.archiveProduct.Execute(e.ctx, asm))

	t.Run("archived parent refuses new components", func(t *testing.T) {
		_, err := e.addComponent.Execute(e.ctx, &add_component.Request{
			ParentID: asm,
			ChildID:  part,
			Quantity: qty(t, 1, 1),
		})
		assert.ErrorIs(t, err, domain.ErrCannotModifyArchived)
	})

	t.Run("archived child is inactive and refused", func(t *testing.T) {
		require.NoError(t, e.archiveProduct.Execute(e.ctx, part))

		parent := e.createAssembly(t, "ASM-2")
		_, err := e.addComponent.Execute(e.ctx, &add_component.Request{
			ParentID: parent,
			ChildID:  part,
			Quantity: qty(t, 1, 1),
		})
		assert.ErrorIs(t, err, domain.ErrProductInactive)
	})

	t.Run("double archive rejected", func(t *testing.T) {
		assert.ErrorIs(t, e.archiveProduct.Execute(e.ctx, asm), domain.ErrAlreadyArchived)
	})
}

func TestWhereUsed(t *testing.T) {
	e, cleanup := newEnv(t)
	defer cleanup()

	shared := e.createArticle(t, "ART-SHARED", 100, 100, 0)
	asm1 := e.createAssembly(t, "ASM-1")
	asm2 := e.createAssembly(t, "ASM-2")

	e.attach(t, asm1, shared, 2, 1, 1)
	e.attach(t, asm2, shared, 3, 1, 1)

	usages, err := e.whereUsed.Execute(e.ctx, &get_where_used.Request{ChildID: shared})
	require.NoError(t, err)
	require.Len(t, usages, 2)

	parents := []string{usages[0].Parent.ID(), usages[1].Parent.ID()}
	assert.ElementsMatch(t, []string{asm1, asm2}, parents)
}
