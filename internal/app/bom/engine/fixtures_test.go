package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/pkg/clock"
)

// fakeStore is an in-memory HierarchyReader for engine tests. Edges keep
// insertion order per parent, which doubles as sequence order.
type fakeStore struct {
	products map[string]*domain.Product
	edges    map[string][]*domain.Component

	// failOn makes reads of one product id fail, to exercise error paths.
	failOn string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[string]*domain.Product),
		edges:    make(map[string][]*domain.Component),
	}
}

func (s *fakeStore) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	if id == s.failOn {
		return nil, fmt.Errorf("store down")
	}
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (s *fakeStore) ListComponents(_ context.Context, parentID string) ([]*domain.Component, error) {
	if parentID == s.failOn {
		return nil, fmt.Errorf("store down")
	}
	return s.edges[parentID], nil
}

var fixtureTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// article adds a manual-mode leaf with the given cost, price and weight,
// each expressed in hundredths.
func (s *fakeStore) article(t *testing.T, id string, cost, price, weight int64) {
	t.Helper()
	s.addProduct(t, id, domain.TypeArticle, domain.PriceModeManual, cost, price, weight)
}

// assembly adds an auto-mode nomenclature whose values derive from its
// components.
func (s *fakeStore) assembly(t *testing.T, id string) {
	t.Helper()
	s.addProduct(t, id, domain.TypeNomenclature, domain.PriceModeAuto, 0, 0, 0)
}

// manualAssembly adds a nomenclature pinned to manual values, so resolution
// must stop at it without expanding its components.
func (s *fakeStore) manualAssembly(t *testing.T, id string, cost, price, weight int64) {
	t.Helper()
	s.addProduct(t, id, domain.TypeNomenclature, domain.PriceModeManual, cost, price, weight)
}

func (s *fakeStore) addProduct(t *testing.T, id string, typ domain.ProductType, mode domain.PriceMode, cost, price, weight int64) {
	t.Helper()
	clk := clock.NewMockClock(fixtureTime)
	c, err := domain.NewMoney(cost, 100)
	require.NoError(t, err)
	p, err := domain.NewMoney(price, 100)
	require.NoError(t, err)
	w, err := domain.NewQuantity(weight, 100)
	require.NoError(t, err)

	product, err := domain.NewProduct(id, "SKU-"+id, "Product "+id, typ, mode, c, p, w, fixtureTime, clk)
	require.NoError(t, err)
	s.products[id] = product
}

// link attaches child under parent with quantity num/denom, sequence taken
// from insertion order.
func (s *fakeStore) link(t *testing.T, parentID, childID string, num, denom int64) {
	t.Helper()
	qty, err := domain.NewQuantity(num, denom)
	require.NoError(t, err)
	seq := int64(len(s.edges[parentID]) + 1)
	edge, err := domain.NewComponent(
		fmt.Sprintf("%s->%s", parentID, childID),
		parentID, childID, qty, seq, fixtureTime,
	)
	require.NoError(t, err)
	s.edges[parentID] = append(s.edges[parentID], edge)
}

// rawLink bypasses Component validation so tests can plant edges a correct
// writer would never produce, such as a pre-existing cycle.
func (s *fakeStore) rawLink(parentID, childID string) {
	qty, _ := domain.NewQuantity(1, 1)
	edge := domain.ReconstructComponent(
		fmt.Sprintf("%s->%s", parentID, childID),
		parentID, childID, qty, int64(len(s.edges[parentID])+1),
		fixtureTime, fixtureTime,
	)
	s.edges[parentID] = append(s.edges[parentID], edge)
}

// chain builds a linear hierarchy root -> n1 -> n2 -> ... of the given
// length and returns the root id.
func (s *fakeStore) chain(t *testing.T, length int) string {
	t.Helper()
	ids := make([]string, length)
	for i := 0; i < length; i++ {
		ids[i] = fmt.Sprintf("n%d", i)
		if i == length-1 {
			s.article(t, ids[i], 100, 200, 50)
		} else {
			s.assembly(t, ids[i])
		}
	}
	for i := 0; i < length-1; i++ {
		s.link(t, ids[i], ids[i+1], 1, 1)
	}
	return ids[0]
}
