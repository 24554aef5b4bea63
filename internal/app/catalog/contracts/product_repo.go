package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
)

// ProductRepo is the write-side repository for products.
// Methods return Spanner mutations; they do not apply them.
type ProductRepo interface {
	// UpdateMut returns a mutation for the fields marked dirty, or nil when nothing changed.
	UpdateMut(p *domain.Product) *spanner.Mutation
}

// VariantRepo is the write-side repository for variants.
type VariantRepo interface {
	InsertMut(v *domain.Variant) *spanner.Mutation
	UpdateMut(v *domain.Variant) *spanner.Mutation
}

// RelationRepo is the write-side repository for directed product relations.
type RelationRepo interface {
	InsertMut(r *domain.RelatedProduct) *spanner.Mutation
}
