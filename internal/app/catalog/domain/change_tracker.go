package domain

// Field names a tracked column of a product or variant.
type Field string

// Tracked fields.
const (
	FieldSale          Field = "sale"
	FieldPosition      Field = "position"
	FieldVariantPrice  Field = "variant_price"
	FieldPriceAddition Field = "price_addition"
)

// ChangeTracker records which fields of an entity were modified so repositories
// can emit partial update mutations.
type ChangeTracker struct {
	dirty map[Field]struct{}
}

// NewChangeTracker creates an empty ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirty: make(map[Field]struct{})}
}

// MarkDirty marks a field as modified.
func (ct *ChangeTracker) MarkDirty(field Field) {
	ct.dirty[field] = struct{}{}
}

// Dirty checks if a specific field has been marked dirty.
func (ct *ChangeTracker) Dirty(field Field) bool {
	_, ok := ct.dirty[field]
	return ok
}

// HasChanges returns true if any fields have been marked dirty.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirty) > 0
}

// Clear removes all dirty field markers.
func (ct *ChangeTracker) Clear() {
	ct.dirty = make(map[Field]struct{})
}
