// Command seed loads a small demo hierarchy into the database: three
// purchased articles, one subassembly and one finished product, then prints
// the finished product's resolved costing. Intended for local development
// against the Spanner emulator.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/rs/zerolog"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/app/bom/engine"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_costing"
	"github.com/light-bringer/bom-service/internal/app/bom/repo"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/add_component"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/create_product"
	"github.com/light-bringer/bom-service/internal/config"
	"github.com/light-bringer/bom-service/internal/pkg/clock"
	"github.com/light-bringer/bom-service/internal/pkg/committer"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger()

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return fmt.Errorf("create spanner client: %w", err)
	}
	defer client.Close()

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)
	products := repo.NewProductRepo(client, clk)
	components := repo.NewComponentRepo(client)
	outbox := repo.NewOutboxRepo(client)
	stores := repo.NewTxnStores(clk)

	createProduct := create_product.NewInteractor(products, outbox, comm, clk)
	addComponent := add_component.NewInteractor(components, outbox, stores, comm, clk)
	costing := get_costing.NewQuery(engine.NewResolver(repo.NewHierarchyStore(client, clk)))

	// Purchased articles with manually set pricing.
	boltID, err := article(ctx, createProduct, "ART-BOLT", "Hex bolt M8", money(1, 2), money(3, 4), qty(1, 100))
	if err != nil {
		return err
	}
	plateID, err := article(ctx, createProduct, "ART-PLATE", "Steel plate 200x200", money(12, 1), money(18, 1), qty(3, 2))
	if err != nil {
		return err
	}
	paintID, err := article(ctx, createProduct, "ART-PAINT", "Primer coat, per unit", money(5, 1), money(8, 1), qty(1, 10))
	if err != nil {
		return err
	}

	// Subassembly: one plate held by four bolts.
	frameID, err := nomenclature(ctx, createProduct, "ASM-FRAME", "Base frame assembly")
	if err != nil {
		return err
	}
	if err := attach(ctx, addComponent, frameID, plateID, qty(1, 1), 1); err != nil {
		return err
	}
	if err := attach(ctx, addComponent, frameID, boltID, qty(4, 1), 2); err != nil {
		return err
	}

	// Finished product: two frames plus paint.
	cabinetID, err := nomenclature(ctx, createProduct, "FG-CABINET", "Server cabinet")
	if err != nil {
		return err
	}
	if err := attach(ctx, addComponent, cabinetID, frameID, qty(2, 1), 1); err != nil {
		return err
	}
	if err := attach(ctx, addComponent, cabinetID, paintID, qty(1, 1), 2); err != nil {
		return err
	}

	result, err := costing.Execute(ctx, &get_costing.Request{ProductID: cabinetID})
	if err != nil {
		return fmt.Errorf("resolve costing: %w", err)
	}

	ev := log.Info().
		Str("product", "FG-CABINET").
		Str("cost", result.Cost.String()).
		Str("price", result.Price.String()).
		Str("weight", result.Weight.String())
	if result.MarginDefined {
		ev = ev.Str("margin", result.Margin.FloatString(4))
	}
	ev.Msg("seeded demo hierarchy")

	return nil
}

func article(
	ctx context.Context,
	uc *create_product.Interactor,
	code, name string,
	cost, price *domain.Money,
	weight *domain.Quantity,
) (string, error) {
	id, err := uc.Execute(ctx, &create_product.Request{
		Code:        code,
		Name:        name,
		ProductType: domain.TypeArticle,
		PriceMode:   domain.PriceModeManual,
		ManualCost:  cost,
		ManualPrice: price,
		UnitWeight:  weight,
	})
	if err != nil {
		return "", fmt.Errorf("create %s: %w", code, err)
	}
	log.Info().Str("code", code).Str("id", id).Msg("created article")
	return id, nil
}

func nomenclature(ctx context.Context, uc *create_product.Interactor, code, name string) (string, error) {
	id, err := uc.Execute(ctx, &create_product.Request{
		Code:        code,
		Name:        name,
		ProductType: domain.TypeNomenclature,
		PriceMode:   domain.PriceModeAuto,
	})
	if err != nil {
		return "", fmt.Errorf("create %s: %w", code, err)
	}
	log.Info().Str("code", code).Str("id", id).Msg("created nomenclature")
	return id, nil
}

func attach(
	ctx context.Context,
	uc *add_component.Interactor,
	parentID, childID string,
	quantity *domain.Quantity,
	sequence int64,
) error {
	_, err := uc.Execute(ctx, &add_component.Request{
		ParentID: parentID,
		ChildID:  childID,
		Quantity: quantity,
		Sequence: sequence,
	})
	if err != nil {
		return fmt.Errorf("attach %s -> %s: %w", parentID, childID, err)
	}
	return nil
}

func money(num, denom int64) *domain.Money {
	m, err := domain.NewMoney(num, denom)
	if err != nil {
		panic(err)
	}
	return m
}

func qty(num, denom int64) *domain.Quantity {
	q, err := domain.NewQuantity(num, denom)
	if err != nil {
		panic(err)
	}
	return q
}
