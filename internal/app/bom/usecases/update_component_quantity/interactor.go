package update_component_quantity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/bom-service/internal/app/bom/contracts"
	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/pkg/clock"
	"github.com/light-bringer/bom-service/internal/pkg/committer"
)

// Request contains the data needed to change an edge multiplicity.
type Request struct {
	ComponentID string
	Quantity    *domain.Quantity
}

// Interactor handles the update component quantity use case. The topology is
// untouched, so no cycle re-check is involved.
type Interactor struct {
	components contracts.ComponentRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates an update component quantity interactor.
func NewInteractor(
	components contracts.ComponentRepository,
	outboxRepo contracts.OutboxRepository,
	comm *committer.Committer,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		components: components,
		outboxRepo: outboxRepo,
		committer:  comm,
		clock:      clk,
	}
}

// Execute updates the quantity of an existing edge.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Component, error) {
	if req.Quantity == nil || !req.Quantity.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}

	component, err := i.components.GetByID(ctx, req.ComponentID)
	if err != nil {
		return nil, err
	}

	if err := component.SetQuantity(req.Quantity, i.clock.Now()); err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	if err := plan.AddErr(i.components.UpdateMut(component)); err != nil {
		return nil, err
	}
	for _, event := range component.DomainEvents() {
		payload, err := i.serializeEvent(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	component.ClearEvents()
	component.Changes().Clear()
	return component, nil
}

// serializeEvent converts a domain event to a JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
