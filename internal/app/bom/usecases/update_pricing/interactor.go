package update_pricing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/bom-service/internal/app/bom/contracts"
	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/models/m_product"
	"github.com/light-bringer/bom-service/internal/pkg/clock"
	"github.com/light-bringer/bom-service/internal/pkg/committer"
)

// Request contains the pricing fields to change. Nil fields are untouched.
type Request struct {
	ProductID   string
	PriceMode   *domain.PriceMode
	ManualCost  *domain.Money
	ManualPrice *domain.Money
	UnitWeight  *domain.Quantity
}

// Interactor handles the update pricing use case. The write is guarded by an
// optimistic version check so two concurrent edits cannot silently overwrite
// each other.
type Interactor struct {
	products   contracts.ProductRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates an update pricing interactor.
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

// Execute applies the requested pricing changes.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	product, err := i.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	if req.PriceMode != nil {
		if err := product.SetPriceMode(*req.PriceMode); err != nil {
			return err
		}
	}
	if req.ManualCost != nil {
		if err := product.SetManualCost(req.ManualCost); err != nil {
			return err
		}
	}
	if req.ManualPrice != nil {
		if err := product.SetManualPrice(req.ManualPrice); err != nil {
			return err
		}
	}
	if req.UnitWeight != nil {
		if err := product.SetUnitWeight(req.UnitWeight); err != nil {
			return err
		}
	}

	if !product.Changes().HasChanges() {
		return nil
	}

	plan := committer.NewPlan()
	if err := plan.AddErr(i.products.UpdateMut(product)); err != nil {
		return err
	}
	for _, event := range product.DomainEvents() {
		payload, err := i.serializeEvent(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
	}

	if err := i.committer.ApplyWithVersionCheck(ctx, m_product.TableName, product.ID(), product.Version(), plan); err != nil {
		return err
	}

	product.ClearEvents()
	product.Changes().Clear()
	return nil
}

// serializeEvent converts a domain event to a JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
