package add_component

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/bom-service/internal/app/bom/contracts"
	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/app/bom/engine"
	"github.com/light-bringer/bom-service/internal/pkg/clock"
	"github.com/light-bringer/bom-service/internal/pkg/committer"
)

// Request contains the data needed to attach a child to a parent.
type Request struct {
	ParentID string
	ChildID  string
	Quantity *domain.Quantity
	Sequence int64
}

// Interactor handles the add component use case. The type guard, the cycle
// check and the insert all run inside one read-write transaction, so a
// concurrent mutation cannot slip a cycle in between check and write.
type Interactor struct {
	components contracts.ComponentRepository
	outboxRepo contracts.OutboxRepository
	stores     contracts.TxnStoreFactory
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates an add component interactor.
func NewInteractor(
	components contracts.ComponentRepository,
	outboxRepo contracts.OutboxRepository,
	stores contracts.TxnStoreFactory,
	comm *committer.Committer,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		components: components,
		outboxRepo: outboxRepo,
		stores:     stores,
		committer:  comm,
		clock:      clk,
	}
}

// Execute validates the edge, proves it keeps the graph acyclic and persists
// it together with its outbox event.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Component, error) {
	// 1. Reject what needs no store access.
	if req.ParentID == req.ChildID {
		return nil, domain.ErrSelfReference
	}
	if req.Quantity == nil || !req.Quantity.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}

	var component *domain.Component

	// 2. Everything else happens inside one transaction.
	err := i.committer.InTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		reader := i.stores.Bind(txn)

		parent, err := reader.GetProduct(ctx, req.ParentID)
		if err != nil {
			return err
		}
		if !parent.CanOwnComponents() {
			return domain.ErrInvalidProductType
		}
		if parent.IsArchived() {
			return domain.ErrCannotModifyArchived
		}

		child, err := reader.GetProduct(ctx, req.ChildID)
		if err != nil {
			return err
		}
		if !child.IsActive() {
			return domain.ErrProductInactive
		}

		guard := engine.NewCycleGuard(reader)
		if err := guard.Check(ctx, req.ParentID, req.ChildID); err != nil {
			return err
		}

		component, err = domain.NewComponent(
			uuid.New().String(),
			req.ParentID,
			req.ChildID,
			req.Quantity,
			req.Sequence,
			i.clock.Now(),
		)
		if err != nil {
			return err
		}

		plan := committer.NewPlan()
		if err := plan.AddErr(i.components.InsertMut(component)); err != nil {
			return err
		}
		for _, event := range component.DomainEvents() {
			payload, err := i.serializeEvent(event)
			if err != nil {
				return fmt.Errorf("failed to serialize event: %w", err)
			}
			plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
		}

		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return nil, err
	}

	component.ClearEvents()
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
