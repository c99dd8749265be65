package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductCreatedEvent is emitted when a product is created.
type ProductCreatedEvent struct {
	ProductID   string
	Code        string
	Name        string
	ProductType string
	PriceMode   string
	CreatedAt   time.Time
}

func (e *ProductCreatedEvent) EventType() string   { return "product.created" }
func (e *ProductCreatedEvent) AggregateID() string { return e.ProductID }

// ProductPricingUpdatedEvent is emitted when manual cost, manual price or the
// price calculation mode changes.
type ProductPricingUpdatedEvent struct {
	ProductID   string
	PriceMode   string
	ManualCost  string
	ManualPrice string
	UpdatedAt   time.Time
}

func (e *ProductPricingUpdatedEvent) EventType() string   { return "product.pricing.updated" }
func (e *ProductPricingUpdatedEvent) AggregateID() string { return e.ProductID }

// ProductArchivedEvent is emitted when a product is soft-deleted.
type ProductArchivedEvent struct {
	ProductID  string
	ArchivedAt time.Time
}

func (e *ProductArchivedEvent) EventType() string   { return "product.archived" }
func (e *ProductArchivedEvent) AggregateID() string { return e.ProductID }

// ComponentAddedEvent is emitted when an edge is added to the hierarchy.
// The aggregate is the owning parent product.
type ComponentAddedEvent struct {
	ComponentID string
	ParentID    string
	ChildID     string
	Quantity    string
	Sequence    int64
	AddedAt     time.Time
}

func (e *ComponentAddedEvent) EventType() string   { return "component.added" }
func (e *ComponentAddedEvent) AggregateID() string { return e.ParentID }

// ComponentQuantityUpdatedEvent is emitted when an edge multiplicity changes.
type ComponentQuantityUpdatedEvent struct {
	ComponentID string
	ParentID    string
	ChildID     string
	Quantity    string
	UpdatedAt   time.Time
}

func (e *ComponentQuantityUpdatedEvent) EventType() string   { return "component.quantity.updated" }
func (e *ComponentQuantityUpdatedEvent) AggregateID() string { return e.ParentID }

// ComponentRemovedEvent is emitted when an edge is deleted.
type ComponentRemovedEvent struct {
	ComponentID string
	ParentID    string
	ChildID     string
	RemovedAt   time.Time
}

func (e *ComponentRemovedEvent) EventType() string   { return "component.removed" }
func (e *ComponentRemovedEvent) AggregateID() string { return e.ParentID }
