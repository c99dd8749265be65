//go:build integration

package e2e

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/bom-service/internal/app/bom/engine"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_bom_tree"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_costing"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_flat_bom"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_where_used"
	"github.com/light-bringer/bom-service/internal/app/bom/repo"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/add_component"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/archive_product"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/create_product"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/remove_component"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/update_component_quantity"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/update_pricing"
	"github.com/light-bringer/bom-service/internal/pkg/clock"
	"github.com/light-bringer/bom-service/internal/pkg/committer"
	"github.com/light-bringer/bom-service/tests/testutil"
)

// env wires the full application stack against the emulator, the same graph
// the service container builds in production.
type env struct {
	ctx    context.Context
	client *spanner.Client
	clock  *clock.MockClock

	createProduct   *create_product.Interactor
	updatePricing   *update_pricing.Interactor
	archiveProduct  *archive_product.Interactor
	addComponent    *add_component.Interactor
	updateQuantity  *update_component_quantity.Interactor
	removeComponent *remove_component.Interactor

	bomTree   *get_bom_tree.Query
	flatBOM   *get_flat_bom.Query
	costing   *get_costing.Query
	whereUsed *get_where_used.Query
}

func newEnv(t *testing.T) (*env, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := testutil.FrozenClock()
	comm := committer.NewCommitter(client)

	products := repo.NewProductRepo(client, clk)
	components := repo.NewComponentRepo(client)
	outbox := repo.NewOutboxRepo(client)
	stores := repo.NewTxnStores(clk)
	hierarchy := repo.NewHierarchyStore(client, clk)

	walker := engine.NewWalker(hierarchy)
	resolver := engine.NewResolver(hierarchy)

	return &env{
		ctx:    context.Background(),
		client: client,
		clock:  clk,

		createProduct:   create_product.NewInteractor(products, outbox, comm, clk),
		updatePricing:   update_pricing.NewInteractor(products, outbox, comm, clk),
		archiveProduct:  archive_product.NewInteractor(products, outbox, comm, clk),
		addComponent:    add_component.NewInteractor(components, outbox, stores, comm, clk),
		updateQuantity:  update_component_quantity.NewInteractor(components, outbox, comm, clk),
		removeComponent: remove_component.NewInteractor(components, outbox, comm, clk),

		bomTree:   get_bom_tree.NewQuery(walker),
		flatBOM:   get_flat_bom.NewQuery(walker),
		costing:   get_costing.NewQuery(resolver),
		whereUsed: get_where_used.NewQuery(components, products),
	}, cleanup
}
