package domain

import (
	"time"

	"github.com/light-bringer/bom-service/internal/pkg/clock"
)

// Field names for change tracking
const (
	FieldCode        = "code"
	FieldName        = "name"
	FieldProductType = "product_type"
	FieldPriceMode   = "price_mode"
	FieldManualCost  = "manual_cost"
	FieldManualPrice = "manual_price"
	FieldUnitWeight  = "unit_weight"
	FieldIsActive    = "is_active"
	FieldArchivedAt  = "archived_at"
)

// ProductType discriminates the three product variants. Only a nomenclature
// may own component edges; articles and services are always leaves.
type ProductType string

const (
	TypeArticle      ProductType = "article"
	TypeNomenclature ProductType = "nomenclature"
	TypeService      ProductType = "service"
)

// Valid reports whether t is one of the known product types.
func (t ProductType) Valid() bool {
	switch t {
	case TypeArticle, TypeNomenclature, TypeService:
		return true
	}
	return false
}

// PriceMode selects how effective cost and price are resolved for a product.
type PriceMode string

const (
	// PriceModeAuto resolves cost and price from the component hierarchy.
	PriceModeAuto PriceMode = "auto"
	// PriceModeManual pins cost and price to the stored manual values,
	// ignoring components entirely.
	PriceModeManual PriceMode = "manual"
)

// Valid reports whether m is one of the known price modes.
func (m PriceMode) Valid() bool {
	return m == PriceModeAuto || m == PriceModeManual
}

// Product is the aggregate root for the composition hierarchy. Depending on
// its type it is either a leaf item (article, service) or an assembly
// (nomenclature) whose cost, price and weight derive from its components.
type Product struct {
	id          string
	code        string
	name        string
	productType ProductType
	priceMode   PriceMode
	manualCost  *Money
	manualPrice *Money
	unitWeight  *Quantity
	active      bool
	version     int64
	createdAt   time.Time
	updatedAt   time.Time
	archivedAt  *time.Time

	clock   clock.Clock
	changes *ChangeTracker
	events  []DomainEvent
}

// NewProduct creates a new Product aggregate (for creation).
func NewProduct(
	id, code, name string,
	productType ProductType,
	priceMode PriceMode,
	manualCost, manualPrice *Money,
	unitWeight *Quantity,
	now time.Time,
	clk clock.Clock,
) (*Product, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if !productType.Valid() {
		return nil, ErrUnknownType
	}
	if !priceMode.Valid() {
		return nil, ErrUnknownPriceMode
	}
	if manualCost == nil {
		manualCost = ZeroMoney()
	}
	if manualPrice == nil {
		manualPrice = ZeroMoney()
	}
	if unitWeight == nil {
		unitWeight = ZeroQuantity()
	}
	if manualCost.IsNegative() {
		return nil, ErrNegativeCost
	}
	if manualPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if unitWeight.IsNegative() {
		return nil, ErrNegativeWeight
	}

	p := &Product{
		id:          id,
		code:        code,
		name:        name,
		productType: productType,
		priceMode:   priceMode,
		manualCost:  manualCost.Copy(),
		manualPrice: manualPrice.Copy(),
		unitWeight:  unitWeight.Copy(),
		active:      true,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	p.changes.MarkDirty(FieldCode)
	p.changes.MarkDirty(FieldName)
	p.changes.MarkDirty(FieldProductType)
	p.changes.MarkDirty(FieldPriceMode)
	p.changes.MarkDirty(FieldManualCost)
	p.changes.MarkDirty(FieldManualPrice)
	p.changes.MarkDirty(FieldUnitWeight)
	p.changes.MarkDirty(FieldIsActive)

	p.recordEvent(&ProductCreatedEvent{
		ProductID:   p.id,
		Code:        p.code,
		Name:        p.name,
		ProductType: string(p.productType),
		PriceMode:   string(p.priceMode),
		CreatedAt:   p.createdAt,
	})

	return p, nil
}

// ReconstructProduct reconstitutes a Product from the store without firing
// validation or events.
func ReconstructProduct(
	id, code, name string,
	productType ProductType,
	priceMode PriceMode,
	manualCost, manualPrice *Money,
	unitWeight *Quantity,
	active bool,
	version int64,
	createdAt, updatedAt time.Time,
	archivedAt *time.Time,
	clk clock.Clock,
) *Product {
	return &Product{
		id:          id,
		code:        code,
		name:        name,
		productType: productType,
		priceMode:   priceMode,
		manualCost:  manualCost,
		manualPrice: manualPrice,
		unitWeight:  unitWeight,
		active:      active,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		archivedAt:  archivedAt,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
}

// Getters
func (p *Product) ID() string                  { return p.id }
func (p *Product) Code() string                { return p.code }
func (p *Product) Name() string                { return p.name }
func (p *Product) Type() ProductType           { return p.productType }
func (p *Product) PriceMode() PriceMode        { return p.priceMode }
func (p *Product) ManualCost() *Money          { return p.manualCost.Copy() }
func (p *Product) ManualPrice() *Money         { return p.manualPrice.Copy() }
func (p *Product) UnitWeight() *Quantity       { return p.unitWeight.Copy() }
func (p *Product) IsActive() bool              { return p.active }
func (p *Product) Version() int64              { return p.version }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) ArchivedAt() *time.Time      { return p.archivedAt }
func (p *Product) Changes() *ChangeTracker     { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// CanOwnComponents reports whether the product may be a parent in the
// hierarchy. This is the invariant behind ErrInvalidProductType.
func (p *Product) CanOwnComponents() bool {
	return p.productType == TypeNomenclature
}

// IsArchived reports whether the product has been soft-deleted.
func (p *Product) IsArchived() bool {
	return p.archivedAt != nil
}

// SetName updates the display name.
func (p *Product) SetName(name string) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}
	if name == "" {
		return ErrEmptyName
	}
	p.name = name
	p.changes.MarkDirty(FieldName)
	return nil
}

// SetManualCost updates the stored manual cost.
func (p *Product) SetManualCost(cost *Money) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}
	if cost == nil || cost.IsNegative() {
		return ErrNegativeCost
	}
	p.manualCost = cost.Copy()
	p.changes.MarkDirty(FieldManualCost)
	p.recordPricingEvent()
	return nil
}

// SetManualPrice updates the stored manual price.
func (p *Product) SetManualPrice(price *Money) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}
	if price == nil || price.IsNegative() {
		return ErrNegativePrice
	}
	p.manualPrice = price.Copy()
	p.changes.MarkDirty(FieldManualPrice)
	p.recordPricingEvent()
	return nil
}

// SetPriceMode switches between automatic and manual resolution.
func (p *Product) SetPriceMode(mode PriceMode) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}
	if !mode.Valid() {
		return ErrUnknownPriceMode
	}
	if p.priceMode == mode {
		return nil
	}
	p.priceMode = mode
	p.changes.MarkDirty(FieldPriceMode)
	p.recordPricingEvent()
	return nil
}

// SetUnitWeight updates the per-unit weight.
func (p *Product) SetUnitWeight(weight *Quantity) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}
	if weight == nil || weight.IsNegative() {
		return ErrNegativeWeight
	}
	p.unitWeight = weight.Copy()
	p.changes.MarkDirty(FieldUnitWeight)
	return nil
}

// SetActive toggles the active flag.
func (p *Product) SetActive(active bool) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}
	if p.active == active {
		return nil
	}
	p.active = active
	p.changes.MarkDirty(FieldIsActive)
	return nil
}

// Archive soft-deletes the product. Referential integrity toward existing
// component edges is the store's concern; the aggregate only flags itself.
func (p *Product) Archive(now time.Time) error {
	if p.IsArchived() {
		return ErrAlreadyArchived
	}
	p.archivedAt = &now
	p.active = false
	p.changes.MarkDirty(FieldArchivedAt)
	p.changes.MarkDirty(FieldIsActive)
	p.recordEvent(&ProductArchivedEvent{
		ProductID:  p.id,
		ArchivedAt: now,
	})
	return nil
}

func (p *Product) checkNotArchived() error {
	if p.IsArchived() {
		return ErrCannotModifyArchived
	}
	return nil
}

func (p *Product) recordPricingEvent() {
	p.recordEvent(&ProductPricingUpdatedEvent{
		ProductID:   p.id,
		PriceMode:   string(p.priceMode),
		ManualCost:  p.manualCost.String(),
		ManualPrice: p.manualPrice.String(),
		UpdatedAt:   p.clock.Now(),
	})
}

func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents drops recorded events after they have been published.
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}
