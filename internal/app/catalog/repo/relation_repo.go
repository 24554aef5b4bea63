package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/models/m_related_product"
)

// RelationRepo is the Spanner implementation of the related-product repository.
type RelationRepo struct{}

func NewRelationRepo() *RelationRepo {
	return &RelationRepo{}
}

// InsertMut inserts the directed pair. A duplicate pair fails at commit with AlreadyExists.
func (r *RelationRepo) InsertMut(rp *domain.RelatedProduct) *spanner.Mutation {
	if rp == nil {
		return nil
	}
	return m_related_product.InsertMutation(
		rp.ID(),
		rp.ProductID(),
		rp.RelatedProductID(),
		rp.Position(),
		rp.CreatedAt().UTC(),
	)
}
