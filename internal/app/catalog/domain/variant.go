package domain

import "time"

// Variant is one parameter combination of a product (e.g. Color=Red;Size=M).
// The relation hash is the variant's canonical identity inside its product.
type Variant struct {
	id                string
	product           *Product
	relationHash      string
	price             *Money // nil inherits the product price
	priceAddition     *Money // nil means no addition
	soldOut           bool
	warehouseQuantity int64
	createdAt         time.Time
	updatedAt         time.Time
	changes           *ChangeTracker
}

// VariantSnapshot carries persisted variant state into ReconstructVariant.
type VariantSnapshot struct {
	ID                string
	RelationHash      string
	Price             *Money
	PriceAddition     *Money
	SoldOut           bool
	WarehouseQuantity int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewVariant creates a variant for the given parameter combination and attaches it to product.
func NewVariant(id string, product *Product, parameters map[string]string, now time.Time) (*Variant, error) {
	if err := checkHashable(parameters); err != nil {
		return nil, err
	}
	hash := SerializeRelationHash(parameters)

	v := &Variant{
		id:           id,
		product:      product,
		relationHash: hash,
		createdAt:    now,
		updatedAt:    now,
		changes:      NewChangeTracker(),
	}
	product.addVariant(v)
	product.record(&VariantCreatedEvent{
		ProductID:    product.id,
		VariantID:    id,
		RelationHash: hash,
		CreatedAt:    now,
	})
	return v, nil
}

// ReconstructVariant rebuilds a persisted variant and attaches it to product.
// Stored prices are normalized the same way the setters normalize them.
func ReconstructVariant(product *Product, s VariantSnapshot) *Variant {
	v := &Variant{
		id:                s.ID,
		product:           product,
		relationHash:      s.RelationHash,
		price:             normalizeOverride(s.Price, product.price),
		priceAddition:     normalizeAddition(s.PriceAddition),
		soldOut:           s.SoldOut,
		warehouseQuantity: s.WarehouseQuantity,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
		changes:           NewChangeTracker(),
	}
	product.addVariant(v)
	return v
}

func (v *Variant) ID() string {
	return v.id
}

func (v *Variant) Product() *Product {
	return v.product
}

func (v *Variant) RelationHash() string {
	return v.relationHash
}

// PriceOverride returns the explicit price, or nil when the product price is inherited.
func (v *Variant) PriceOverride() *Money {
	return v.price
}

// PriceAddition returns the surcharge added after sale discounting, or nil.
func (v *Variant) PriceAddition() *Money {
	return v.priceAddition
}

func (v *Variant) IsSoldOut() bool {
	return v.soldOut
}

func (v *Variant) WarehouseQuantity() int64 {
	return v.warehouseQuantity
}

func (v *Variant) CreatedAt() time.Time {
	return v.createdAt
}

func (v *Variant) UpdatedAt() time.Time {
	return v.updatedAt
}

func (v *Variant) Changes() *ChangeTracker {
	return v.changes
}

// Parameters decodes the relation hash.
func (v *Variant) Parameters() (map[string]string, error) {
	return DeserializeRelationHash(v.relationHash)
}

// SetPrice sets the explicit price. Values within 0.01 of zero or of the
// product price are stored as "inherit".
func (v *Variant) SetPrice(price *Money, now time.Time) (bool, error) {
	if price != nil && price.IsNegative() {
		return false, ErrNegativePrice
	}
	normalized := normalizeOverride(price, v.product.price)
	if sameOptional(v.price, normalized) {
		return false, nil
	}
	v.price = normalized
	v.changes.MarkDirty(FieldVariantPrice)
	v.updatedAt = now
	return true, nil
}

// SetPriceAddition sets the surcharge. Values within 0.01 of zero are stored as "none".
func (v *Variant) SetPriceAddition(addition *Money, now time.Time) bool {
	normalized := normalizeAddition(addition)
	if sameOptional(v.priceAddition, normalized) {
		return false
	}
	v.priceAddition = normalized
	v.changes.MarkDirty(FieldPriceAddition)
	v.updatedAt = now
	return true
}

// RecordPriceChange emits a VariantPriceChangedEvent carrying the current prices.
func (v *Variant) RecordPriceChange(now time.Time) {
	v.product.record(&VariantPriceChangedEvent{
		ProductID:     v.product.id,
		VariantID:     v.id,
		Price:         v.price,
		PriceAddition: v.priceAddition,
		ChangedAt:     now,
	})
}

func normalizeOverride(price, productPrice *Money) *Money {
	if price == nil || price.Near(Zero()) || price.Near(productPrice) {
		return nil
	}
	return price
}

func normalizeAddition(addition *Money) *Money {
	if addition == nil || addition.Near(Zero()) {
		return nil
	}
	return addition
}

func sameOptional(a, b *Money) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}
