package create_product

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/bom-service/internal/app/bom/contracts"
	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/pkg/clock"
	"github.com/light-bringer/bom-service/internal/pkg/committer"
)

// Request contains the data needed to create a product.
type Request struct {
	Code        string
	Name        string
	ProductType domain.ProductType
	PriceMode   domain.PriceMode
	ManualCost  *domain.Money
	ManualPrice *domain.Money
	UnitWeight  *domain.Quantity
}

// Interactor handles the create product use case.
type Interactor struct {
	products   contracts.ProductRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a create product interactor.
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

// Execute creates a new product and returns its id.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	product, err := domain.NewProduct(
		uuid.New().String(),
		req.Code,
		req.Name,
		req.ProductType,
		req.PriceMode,
		req.ManualCost,
		req.ManualPrice,
		req.UnitWeight,
		i.clock.Now(),
		i.clock,
	)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	if err := plan.AddErr(i.products.InsertMut(product)); err != nil {
		return "", err
	}
	for _, event := range product.DomainEvents() {
		payload, err := i.serializeEvent(event)
		if err != nil {
			return "", fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return product.ID(), nil
}

// serializeEvent converts a domain event to a JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
