package repo

import (
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/models/m_product"
	"github.com/murkotick/catalog-engine/internal/models/m_variant"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func loadedProduct() *domain.Product {
	return domain.ReconstructProduct(domain.ProductSnapshot{
		ID:     "prod-1",
		Slug:   "t-shirt",
		Name:   "T-Shirt",
		Price:  domain.NewMoneyFromInt(100),
		Active: true,
	})
}

// TestProductUpdateMut_NoChanges returns nil for an untouched aggregate.
func TestProductUpdateMut_NoChanges(t *testing.T) {
	assert.Nil(t, NewProductRepo().UpdateMut(loadedProduct()))
	assert.Nil(t, NewProductRepo().UpdateMut(nil))
}

// TestProductUpdateMut_Sale writes only the sale column plus updated_at.
func TestProductUpdateMut_Sale(t *testing.T) {
	p := loadedProduct()
	require.NoError(t, p.SetSale(20, now))

	values := buildUpdateValues(p)
	require.Len(t, values, 2)

	sale, ok := values[m_product.ColSalePercentage].(spanner.NullNumeric)
	require.True(t, ok)
	assert.True(t, sale.Valid)
	assert.Equal(t, 0, sale.Numeric.Cmp(big.NewRat(20, 1)))
	assert.Equal(t, now, values[m_product.ColUpdatedAt])

	require.NotNil(t, NewProductRepo().UpdateMut(p))
}

// TestProductUpdateMut_ClearedSale stores NULL.
func TestProductUpdateMut_ClearedSale(t *testing.T) {
	sale, err := domain.NewSale(10)
	require.NoError(t, err)
	p := domain.ReconstructProduct(domain.ProductSnapshot{ID: "p", Price: domain.NewMoneyFromInt(10), Sale: sale})
	require.NoError(t, p.SetSale(0, now))

	values := buildUpdateValues(p)
	v, ok := values[m_product.ColSalePercentage].(spanner.NullNumeric)
	require.True(t, ok)
	assert.False(t, v.Valid)
}

func TestVariantInsertValues(t *testing.T) {
	p := loadedProduct()
	v, err := domain.NewVariant("var-1", p, map[string]string{"size": "M"}, now)
	require.NoError(t, err)
	require.True(t, v.SetPriceAddition(domain.NewMoney(250, 100), now))

	values := buildVariantInsertValues(v)
	assert.Equal(t, "prod-1", values[m_variant.ColProductID])
	assert.Equal(t, "var-1", values[m_variant.ColVariantID])
	assert.Equal(t, "Size=M", values[m_variant.ColRelationHash])

	price := values[m_variant.ColPrice].(spanner.NullNumeric)
	assert.False(t, price.Valid)
	addition := values[m_variant.ColPriceAddition].(spanner.NullNumeric)
	require.True(t, addition.Valid)
	assert.Equal(t, 0, addition.Numeric.Cmp(big.NewRat(5, 2)))

	require.NotNil(t, NewVariantRepo().InsertMut(v))
}

func TestVariantUpdateMut_OnlyDirtyColumns(t *testing.T) {
	p := loadedProduct()
	v := domain.ReconstructVariant(p, domain.VariantSnapshot{ID: "var-1", RelationHash: "Size=M"})
	assert.Nil(t, NewVariantRepo().UpdateMut(v))

	changed, err := v.SetPrice(domain.NewMoneyFromInt(120), now)
	require.NoError(t, err)
	require.True(t, changed)

	values := buildVariantUpdateValues(v)
	assert.Len(t, values, 2)
	assert.Contains(t, values, m_variant.ColPrice)
	assert.NotContains(t, values, m_variant.ColPriceAddition)
	require.NotNil(t, NewVariantRepo().UpdateMut(v))
}

func TestRelationAndOutboxInsertMut(t *testing.T) {
	p := loadedProduct()
	rp, err := domain.NewRelatedProduct("rel-1", p, "prod-2", 3, now)
	require.NoError(t, err)

	assert.NotNil(t, NewRelationRepo().InsertMut(rp))
	assert.Nil(t, NewRelationRepo().InsertMut(nil))

	assert.NotNil(t, NewOutboxRepo().InsertMut(&contracts.OutboxEvent{EventID: "e1", EventType: "product.related", AggregateID: "prod-1", PayloadJSON: "{}", CreatedAtUTC: now}))
	assert.Nil(t, NewOutboxRepo().InsertMut(nil))
}
