package domain

import "time"

// Field names for component change tracking
const (
	FieldQuantity = "quantity"
	FieldSequence = "sequence"
)

// Component is a directed "parent contains child" edge. Quantity says how
// many units of the child go into one unit of the parent; Sequence orders
// siblings for display and has no bearing on any computed value.
//
// Acyclicity is not a Component invariant: a single edge cannot know the
// rest of the graph. It is enforced by the engine's CycleGuard before any
// edge is written.
type Component struct {
	id        string
	parentID  string
	childID   string
	quantity  *Quantity
	sequence  int64
	createdAt time.Time
	updatedAt time.Time

	changes *ChangeTracker
	events  []DomainEvent
}

// NewComponent creates a new component edge (for insertion).
func NewComponent(id, parentID, childID string, quantity *Quantity, sequence int64, now time.Time) (*Component, error) {
	if parentID == childID {
		return nil, ErrSelfReference
	}
	if quantity == nil || !quantity.IsPositive() {
		return nil, ErrInvalidQuantity
	}

	c := &Component{
		id:        id,
		parentID:  parentID,
		childID:   childID,
		quantity:  quantity.Copy(),
		sequence:  sequence,
		createdAt: now,
		updatedAt: now,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}

	c.changes.MarkDirty(FieldQuantity)
	c.changes.MarkDirty(FieldSequence)

	c.recordEvent(&ComponentAddedEvent{
		ComponentID: c.id,
		ParentID:    c.parentID,
		ChildID:     c.childID,
		Quantity:    c.quantity.String(),
		Sequence:    c.sequence,
		AddedAt:     now,
	})

	return c, nil
}

// ReconstructComponent reconstitutes a component edge from the store.
func ReconstructComponent(id, parentID, childID string, quantity *Quantity, sequence int64, createdAt, updatedAt time.Time) *Component {
	return &Component{
		id:        id,
		parentID:  parentID,
		childID:   childID,
		quantity:  quantity,
		sequence:  sequence,
		createdAt: createdAt,
		updatedAt: updatedAt,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}
}

// Getters
func (c *Component) ID() string                  { return c.id }
func (c *Component) ParentID() string            { return c.parentID }
func (c *Component) ChildID() string             { return c.childID }
func (c *Component) Quantity() *Quantity         { return c.quantity.Copy() }
func (c *Component) Sequence() int64             { return c.sequence }
func (c *Component) CreatedAt() time.Time        { return c.createdAt }
func (c *Component) UpdatedAt() time.Time        { return c.updatedAt }
func (c *Component) Changes() *ChangeTracker     { return c.changes }
func (c *Component) DomainEvents() []DomainEvent { return c.events }

// SetQuantity updates the edge multiplicity. The topology is unchanged, so
// no cycle re-check is required by callers.
func (c *Component) SetQuantity(quantity *Quantity, now time.Time) error {
	if quantity == nil || !quantity.IsPositive() {
		return ErrInvalidQuantity
	}
	c.quantity = quantity.Copy()
	c.changes.MarkDirty(FieldQuantity)
	c.recordEvent(&ComponentQuantityUpdatedEvent{
		ComponentID: c.id,
		ParentID:    c.parentID,
		ChildID:     c.childID,
		Quantity:    c.quantity.String(),
		UpdatedAt:   now,
	})
	return nil
}

// SetSequence updates the display order among siblings.
func (c *Component) SetSequence(sequence int64) {
	if c.sequence == sequence {
		return
	}
	c.sequence = sequence
	c.changes.MarkDirty(FieldSequence)
}

func (c *Component) recordEvent(event DomainEvent) {
	c.events = append(c.events, event)
}

// ClearEvents drops recorded events after they have been published.
func (c *Component) ClearEvents() {
	c.events = make([]DomainEvent, 0)
}
