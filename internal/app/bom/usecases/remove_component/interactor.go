package remove_component

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/bom-service/internal/app/bom/contracts"
	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/pkg/clock"
	"github.com/light-bringer/bom-service/internal/pkg/committer"
)

// Interactor handles the remove component use case. Removing an edge can
// never create a cycle, so only existence is checked.
type Interactor struct {
	components contracts.ComponentRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a remove component interactor.
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

// Execute deletes an existing edge and records the removal event.
func (i *Interactor) Execute(ctx context.Context, componentID string) error {
	component, err := i.components.GetByID(ctx, componentID)
	if err != nil {
		return err
	}

	event := &domain.ComponentRemovedEvent{
		ComponentID: component.ID(),
		ParentID:    component.ParentID(),
		ChildID:     component.ChildID(),
		RemovedAt:   i.clock.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}

	plan := committer.NewPlan()
	plan.Add(i.components.DeleteMut(component.ID()))
	plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload))))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
