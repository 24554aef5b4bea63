package repo

import (
	"math/big"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/models/m_variant"
)

// VariantRepo is the Spanner implementation of the variant write-side repository.
type VariantRepo struct{}

func NewVariantRepo() *VariantRepo {
	return &VariantRepo{}
}

func buildVariantInsertValues(v *domain.Variant) map[string]interface{} {
	return m_variant.BuildInsertMap(
		v.Product().ID(),
		v.ID(),
		v.RelationHash(),
		ratOrNil(v.PriceOverride()),
		ratOrNil(v.PriceAddition()),
		v.IsSoldOut(),
		v.WarehouseQuantity(),
		v.CreatedAt().UTC(),
		v.UpdatedAt().UTC(),
	)
}

func buildVariantUpdateValues(v *domain.Variant) map[string]interface{} {
	updates := map[string]interface{}{}
	if v.Changes().Dirty(domain.FieldVariantPrice) {
		updates[m_variant.ColPrice] = m_variant.Numeric(ratOrNil(v.PriceOverride()))
	}
	if v.Changes().Dirty(domain.FieldPriceAddition) {
		updates[m_variant.ColPriceAddition] = m_variant.Numeric(ratOrNil(v.PriceAddition()))
	}
	if len(updates) > 0 {
		updates[m_variant.ColUpdatedAt] = v.UpdatedAt().UTC()
	}
	return updates
}

func (r *VariantRepo) InsertMut(v *domain.Variant) *spanner.Mutation {
	if v == nil {
		return nil
	}
	return m_variant.InsertMutation(buildVariantInsertValues(v))
}

// UpdateMut writes the dirty price columns, or returns nil.
func (r *VariantRepo) UpdateMut(v *domain.Variant) *spanner.Mutation {
	if v == nil || !v.Changes().HasChanges() {
		return nil
	}
	updates := buildVariantUpdateValues(v)
	if len(updates) == 0 {
		return nil
	}
	return m_variant.UpdateMutation(v.Product().ID(), v.ID(), updates)
}

func ratOrNil(m *domain.Money) *big.Rat {
	if m == nil {
		return nil
	}
	return m.Rat()
}
