package domain

import (
	"fmt"
	"strings"
	"time"
)

// Position bounds for manual product ranking.
const (
	MinPosition = 0
	MaxPosition = 1000
)

// Product is the aggregate root for the catalog domain.
// Variants belong to exactly one product and are reached through it.
type Product struct {
	id             string
	slug           string
	name           string
	price          *Money
	sale           *Sale
	position       int64
	active         bool
	soldOut        bool
	brandID        string
	mainCategoryID string
	categoryIDs    []string
	variants       []*Variant
	createdAt      time.Time
	updatedAt      time.Time
	changes        *ChangeTracker
	events         []DomainEvent
}

// ProductSnapshot carries persisted product state into ReconstructProduct.
type ProductSnapshot struct {
	ID             string
	Slug           string
	Name           string
	Price          *Money
	Sale           *Sale
	Position       int64
	Active         bool
	SoldOut        bool
	BrandID        string
	MainCategoryID string
	CategoryIDs    []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewProduct creates an active product with the given identity and base price.
func NewProduct(id, slug, name string, price *Money, now time.Time) (*Product, error) {
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyProductName
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	return &Product{
		id:        id,
		slug:      strings.TrimSpace(slug),
		name:      strings.TrimSpace(name),
		price:     price,
		active:    true,
		createdAt: now,
		updatedAt: now,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}, nil
}

// ReconstructProduct reconstructs a Product from persisted state.
// Used by repositories and read models when loading from the database.
func ReconstructProduct(s ProductSnapshot) *Product {
	price := s.Price
	if price == nil {
		price = Zero()
	}
	return &Product{
		id:             s.ID,
		slug:           s.Slug,
		name:           s.Name,
		price:          price,
		sale:           s.Sale,
		position:       clampPosition(s.Position),
		active:         s.Active,
		soldOut:        s.SoldOut,
		brandID:        s.BrandID,
		mainCategoryID: s.MainCategoryID,
		categoryIDs:    s.CategoryIDs,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		changes:        NewChangeTracker(),
		events:         make([]DomainEvent, 0),
	}
}

// Getters

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Slug() string {
	return p.slug
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() *Money {
	return p.price
}

func (p *Product) Sale() *Sale {
	return p.sale
}

func (p *Product) Position() int64 {
	return p.position
}

func (p *Product) IsActive() bool {
	return p.active
}

func (p *Product) IsSoldOut() bool {
	return p.soldOut
}

func (p *Product) BrandID() string {
	return p.brandID
}

func (p *Product) MainCategoryID() string {
	return p.mainCategoryID
}

func (p *Product) CategoryIDs() []string {
	return p.categoryIDs
}

func (p *Product) Variants() []*Variant {
	return p.variants
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) Changes() *ChangeTracker {
	return p.changes
}

func (p *Product) DomainEvents() []DomainEvent {
	return p.events
}

// IsSale reports whether a sale percentage greater than zero is set.
func (p *Product) IsSale() bool {
	return p.sale != nil
}

// SalePrice returns the base price with the sale applied, or the base price when not on sale.
func (p *Product) SalePrice() *Money {
	if p.sale == nil {
		return p.price
	}
	return p.sale.ApplyTo(p.price)
}

// Variant looks up one of the product's variants.
func (p *Product) Variant(variantID string) (*Variant, error) {
	for _, v := range p.variants {
		if v.id == variantID {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: product %s, variant %s", ErrVariantNotFound, p.id, variantID)
}

// HasRelationHash reports whether any variant already encodes the given combination.
func (p *Product) HasRelationHash(hash string) bool {
	for _, v := range p.variants {
		if v.relationHash == hash {
			return true
		}
	}
	return false
}

// Business Methods

// SetSale sets the sale percentage. Zero clears the sale.
func (p *Product) SetSale(percentage float64, now time.Time) error {
	sale, err := NewSale(percentage)
	if err != nil {
		return err
	}
	if sale.Equals(p.sale) {
		return nil
	}

	old := p.sale
	p.sale = sale
	p.changes.MarkDirty(FieldSale)
	p.updatedAt = now

	p.events = append(p.events, &ProductSaleChangedEvent{
		ProductID:  p.id,
		OldPercent: salePercent(old),
		NewPercent: salePercent(sale),
		ChangedAt:  now,
	})
	return nil
}

// SetPosition sets the manual ranking, clamped to [MinPosition, MaxPosition].
func (p *Product) SetPosition(position int64, now time.Time) {
	position = clampPosition(position)
	if position == p.position {
		return
	}
	p.position = position
	p.changes.MarkDirty(FieldPosition)
	p.updatedAt = now
}

// ClearEvents clears the accumulated domain events.
// Should be called after events have been persisted to the outbox.
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}

func (p *Product) addVariant(v *Variant) {
	p.variants = append(p.variants, v)
}

func (p *Product) record(e DomainEvent) {
	p.events = append(p.events, e)
}

func salePercent(s *Sale) *float64 {
	if s == nil {
		return nil
	}
	pct := s.Percentage()
	return &pct
}

func clampPosition(position int64) int64 {
	return min(max(position, MinPosition), MaxPosition)
}

func validateSlug(slug string) error {
	if strings.TrimSpace(slug) == "" {
		return ErrEmptySlug
	}
	return nil
}

func validatePrice(price *Money) error {
	if price == nil || price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
