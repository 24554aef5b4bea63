package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/models/m_product"
)

// ProductRepo is the Spanner implementation of the product write-side repository.
// It returns *spanner.Mutation objects but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildUpdateValues maps the dirty fields to columns. Tests inspect the map
// instead of spanner.Mutation internals.
func buildUpdateValues(p *domain.Product) map[string]interface{} {
	updates := map[string]interface{}{}

	if p.Changes().Dirty(domain.FieldSale) {
		if s := p.Sale(); s != nil {
			updates[m_product.ColSalePercentage] = m_product.Numeric(s.PercentageRat())
		} else {
			updates[m_product.ColSalePercentage] = m_product.Numeric(nil)
		}
	}
	if p.Changes().Dirty(domain.FieldPosition) {
		updates[m_product.ColPosition] = p.Position()
	}

	if len(updates) > 0 {
		updates[m_product.ColUpdatedAt] = p.UpdatedAt().UTC()
	}
	return updates
}

// UpdateMut builds an Update mutation from the aggregate's ChangeTracker, or nil.
func (r *ProductRepo) UpdateMut(p *domain.Product) *spanner.Mutation {
	if p == nil || p.Changes() == nil || !p.Changes().HasChanges() {
		return nil
	}
	updates := buildUpdateValues(p)
	if len(updates) == 0 {
		return nil
	}
	return m_product.UpdateMutation(p.ID(), updates)
}
