package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/bom-service/internal/models/m_component"
	"github.com/light-bringer/bom-service/internal/models/m_product"
)

// CreateTestArticle inserts a manual-mode leaf product directly into the
// database and returns its id. Cost, price and weight are in hundredths.
func CreateTestArticle(t *testing.T, client *spanner.Client, code string, cost, price, weight int64) string {
	t.Helper()
	return insertProduct(t, client, code, "article", "manual", cost, price, weight)
}

// CreateTestAssembly inserts an auto-mode nomenclature and returns its id.
func CreateTestAssembly(t *testing.T, client *spanner.Client, code string) string {
	t.Helper()
	return insertProduct(t, client, code, "nomenclature", "auto", 0, 0, 0)
}

func insertProduct(t *testing.T, client *spanner.Client, code, productType, priceMode string, cost, price, weight int64) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()
	now := time.Now()

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:              productID,
		Code:                   code,
		Name:                   "Test " + code,
		ProductType:            productType,
		PriceMode:              priceMode,
		ManualCostNumerator:    cost,
		ManualCostDenominator:  100,
		ManualPriceNumerator:   price,
		ManualPriceDenominator: 100,
		UnitWeightNumerator:    weight,
		UnitWeightDenominator:  100,
		IsActive:               true,
		Version:                1,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test product %s", code)

	return productID
}

// LinkComponents inserts a parent->child edge directly into the database
// and returns the component id.
func LinkComponents(t *testing.T, client *spanner.Client, parentID, childID string, qtyNum, qtyDenom, sequence int64) string {
	t.Helper()

	ctx := context.Background()
	componentID := uuid.New().String()
	now := time.Now()

	model := m_component.NewModel()
	data := &m_component.Data{
		ComponentID:         componentID,
		ParentID:            parentID,
		ChildID:             childID,
		QuantityNumerator:   qtyNum,
		QuantityDenominator: qtyDenom,
		Sequence:            sequence,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to link %s -> %s", parentID, childID)

	return componentID
}
