package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/rs/zerolog"

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
	"github.com/light-bringer/bom-service/internal/config"
	"github.com/light-bringer/bom-service/internal/pkg/clock"
	"github.com/light-bringer/bom-service/internal/pkg/committer"
	transporthttp "github.com/light-bringer/bom-service/internal/transport/http"
)

// ServiceOptions holds the wired application dependencies.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	BOMHandler    *transporthttp.BOMHandler
}

// NewServiceOptions builds the dependency graph.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	productRepo := repo.NewProductRepo(spannerClient, clk)
	componentRepo := repo.NewComponentRepo(spannerClient)
	outboxRepo := repo.NewOutboxRepo(spannerClient)
	hierarchyStore := repo.NewHierarchyStore(spannerClient, clk)
	txnStores := repo.NewTxnStores(clk)

	walker := engine.NewWalker(hierarchyStore)
	resolver := engine.NewResolver(hierarchyStore)

	createProduct := create_product.NewInteractor(productRepo, outboxRepo, comm, clk)
	updatePricing := update_pricing.NewInteractor(productRepo, outboxRepo, comm, clk)
	archiveProduct := archive_product.NewInteractor(productRepo, outboxRepo, comm, clk)
	addComponent := add_component.NewInteractor(componentRepo, outboxRepo, txnStores, comm, clk)
	updateQuantity := update_component_quantity.NewInteractor(componentRepo, outboxRepo, comm, clk)
	removeComponent := remove_component.NewInteractor(componentRepo, outboxRepo, comm, clk)

	bomTree := get_bom_tree.NewQuery(walker)
	flatBOM := get_flat_bom.NewQuery(walker)
	costing := get_costing.NewQuery(resolver)
	whereUsed := get_where_used.NewQuery(componentRepo, productRepo)

	bomHandler := transporthttp.NewBOMHandler(
		createProduct,
		updatePricing,
		archiveProduct,
		addComponent,
		updateQuantity,
		removeComponent,
		bomTree,
		flatBOM,
		costing,
		whereUsed,
		cfg.MaxBOMDepth,
		logger,
	)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		BOMHandler:    bomHandler,
	}, nil
}

// Close releases all held resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
