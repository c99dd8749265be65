//go:build integration

package e2e

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/add_component"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/create_product"
)

func money(t *testing.T, num, denom int64) *domain.Money {
	t.Helper()
	m, err := domain.NewMoney(num, denom)
	require.NoError(t, err)
	return m
}

func qty(t *testing.T, num, denom int64) *domain.Quantity {
	t.Helper()
	q, err := domain.NewQuantity(num, denom)
	require.NoError(t, err)
	return q
}

// createArticle creates a manual-mode leaf through the use case layer.
// Cost, price and weight are in hundredths.
func (e *env) createArticle(t *testing.T, code string, cost, price, weight int64) string {
	t.Helper()

	w, err := domain.NewQuantity(weight, 100)
	require.NoError(t, err)

	id, err := e.createProduct.Execute(e.ctx, &create_product.Request{
		Code:        code,
		Name:        "Article " + code,
		ProductType: domain.TypeArticle,
		PriceMode:   domain.PriceModeManual,
		ManualCost:  money(t, cost, 100),
		ManualPrice: money(t, price, 100),
		UnitWeight:  w,
	})
	require.NoError(t, err)
	return id
}

// createAssembly creates an auto-mode nomenclature through the use case layer.
func (e *env) createAssembly(t *testing.T, code string) string {
	t.Helper()

	id, err := e.createProduct.Execute(e.ctx, &create_product.Request{
		Code:        code,
		Name:        "Assembly " + code,
		ProductType: domain.TypeNomenclature,
		PriceMode:   domain.PriceModeAuto,
	})
	require.NoError(t, err)
	return id
}

// attach adds a component edge through the use case layer and returns the
// component id.
func (e *env) attach(t *testing.T, parentID, childID string, num, denom, sequence int64) string {
	t.Helper()

	component, err := e.addComponent.Execute(e.ctx, &add_component.Request{
		ParentID: parentID,
		ChildID:  childID,
		Quantity: qty(t, num, denom),
		Sequence: sequence,
	})
	require.NoError(t, err)
	return component.ID()
}
