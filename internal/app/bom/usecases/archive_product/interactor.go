package archive_product

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/bom-service/internal/app/bom/contracts"
	"github.com/light-bringer/bom-service/internal/models/m_product"
	"github.com/light-bringer/bom-service/internal/pkg/clock"
	"github.com/light-bringer/bom-service/internal/pkg/committer"
)

// Interactor handles the archive product use case (soft delete). Component
// edges referencing the product stay in place; the store's referential rules
// decide when rows may physically disappear.
type Interactor struct {
	products   contracts.ProductRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates an archive product interactor.
func NewInteractor(
	products contracts.ProductRepository,
	outboxRepo contracts.OutboxRepository,
	comm *committer.Committer,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		products:   products,
		outboxRepo: outboxRepo,
		committer:  comm,
		clock:      clk,
	}
}

// Execute archives the product.
func (i *Interactor) Execute(ctx context.Context, productID string) error {
	product, err := i.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	if err := product.Archive(i.clock.Now()); err != nil {
		return err
	}

	plan := committer.NewPlan()
	if err := plan.AddErr(i.products.UpdateMut(product)); err != nil {
		return err
	}
	for _, event := range product.DomainEvents() {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload))))
	}

	if err := i.committer.ApplyWithVersionCheck(ctx, m_product.TableName, product.ID(), product.Version(), plan); err != nil {
		return err
	}

	product.ClearEvents()
	product.Changes().Clear()
	return nil
}
