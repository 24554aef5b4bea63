package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVariant_RecordsEvent(t *testing.T) {
	p := newTestProduct(t, NewMoneyFromInt(100))
	v, err := NewVariant("v1", p, map[string]string{"size": "M", "color": "Red"}, testNow)
	require.NoError(t, err)

	assert.Equal(t, "Color=Red;Size=M", v.RelationHash())
	assert.Same(t, p, v.Product())
	require.Len(t, p.DomainEvents(), 1)
	evt, ok := p.DomainEvents()[0].(*VariantCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, "v1", evt.VariantID)
	assert.Equal(t, "Color=Red;Size=M", evt.RelationHash)
}

func TestVariant_SetPriceSnapsToInherit(t *testing.T) {
	p := newTestProduct(t, NewMoneyFromInt(100))
	v, err := NewVariant("v1", p, map[string]string{"Size": "M"}, testNow)
	require.NoError(t, err)

	changed, err := v.SetPrice(NewMoney(100005, 1000), testNow) // 100.005
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, v.PriceOverride())

	changed, err = v.SetPrice(NewMoney(1, 1000), testNow) // 0.001
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, v.PriceOverride())

	changed, err = v.SetPrice(NewMoneyFromInt(120), testNow)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NotNil(t, v.PriceOverride())
	assert.True(t, v.PriceOverride().Equals(NewMoneyFromInt(120)))
	assert.True(t, v.Changes().Dirty(FieldVariantPrice))

	changed, err = v.SetPrice(nil, testNow)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Nil(t, v.PriceOverride())

	_, err = v.SetPrice(NewMoneyFromInt(-1), testNow)
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestVariant_SetPriceAdditionSnapsToNone(t *testing.T) {
	p := newTestProduct(t, NewMoneyFromInt(100))
	v, err := NewVariant("v1", p, map[string]string{"Size": "M"}, testNow)
	require.NoError(t, err)

	assert.False(t, v.SetPriceAddition(NewMoney(9, 1000), testNow))
	assert.Nil(t, v.PriceAddition())

	assert.True(t, v.SetPriceAddition(NewMoneyFromInt(5), testNow))
	assert.True(t, v.Changes().Dirty(FieldPriceAddition))
	assert.False(t, v.SetPriceAddition(NewMoneyFromInt(5), testNow))
}

func TestReconstructVariant_NormalizesStoredPrices(t *testing.T) {
	p := ReconstructProduct(ProductSnapshot{ID: "p", Price: NewMoneyFromInt(50)})
	v := ReconstructVariant(p, VariantSnapshot{
		ID:            "v",
		RelationHash:  "Size=S",
		Price:         NewMoneyFromInt(50),
		PriceAddition: Zero(),
	})
	assert.Nil(t, v.PriceOverride())
	assert.Nil(t, v.PriceAddition())
	assert.Len(t, p.Variants(), 1)

	params, err := v.Parameters()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Size": "S"}, params)
}
