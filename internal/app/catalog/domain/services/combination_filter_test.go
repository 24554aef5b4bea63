package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
)

func values(entries []ParameterValue) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}

// TestCombinationFilter_FirstSeenValues checks de-duplication and encounter order.
func TestCombinationFilter_FirstSeenValues(t *testing.T) {
	p := product(t, "p", domain.NewMoneyFromInt(100), 0)
	variant(p, "v1", "Color=Red;Size=S", nil, nil, false)
	variant(p, "v2", "Color=Red;Size=M", nil, nil, false)
	variant(p, "v3", "Color=Blue;Size=S", nil, nil, false)

	res, err := NewCombinationFilter(NewVariantPricer()).Build(p, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Red", "Blue"}, values(res.Parameters["Color"]))
	assert.Equal(t, []string{"S", "M"}, values(res.Parameters["Size"]))
	assert.Equal(t, []string{"Color", "Size"}, res.ParameterNames)
	assert.Equal(t, "v3", res.Parameters["Color"][1].VariantID)
	assert.Equal(t, "Color=Blue;Size=S", res.Parameters["Color"][1].Hash)
	assert.Equal(t, map[string]string{"Color": "Red", "Size": "S"}, res.Default)
	assert.Len(t, res.Variants, 3)
}

func TestCombinationFilter_DefaultPrefersAvailable(t *testing.T) {
	p := product(t, "p", domain.NewMoneyFromInt(100), 0)
	variant(p, "v1", "Size=S", nil, nil, true)
	variant(p, "v2", "Size=M", nil, nil, false)

	res, err := NewCombinationFilter(NewVariantPricer()).Build(p, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Size": "M"}, res.Default)
	assert.False(t, res.Variants[0].Available)
	assert.True(t, res.Variants[1].Available)
}

func TestCombinationFilter_DefaultFallsBackToGlobal(t *testing.T) {
	p := product(t, "p", domain.NewMoneyFromInt(100), 0)
	variant(p, "v1", "Size=S", nil, nil, true)
	variant(p, "v2", "Size=M", nil, nil, true)

	res, err := NewCombinationFilter(NewVariantPricer()).Build(p, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Size": "S"}, res.Default)
}

func TestCombinationFilter_SkipsVariantsWithoutParameters(t *testing.T) {
	p := product(t, "p", domain.NewMoneyFromInt(100), 0)
	variant(p, "v0", "", nil, nil, false)
	variant(p, "v1", "Size=S", nil, nil, true)

	res, err := NewCombinationFilter(NewVariantPricer()).Build(p, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Size": "S"}, res.Default)
	assert.Equal(t, []string{"Size"}, res.ParameterNames)
	assert.Len(t, res.Variants, 2)
}

func TestCombinationFilter_SelectedVariant(t *testing.T) {
	p := product(t, "p", domain.NewMoneyFromInt(100), 20)
	variant(p, "v1", "Size=S", nil, nil, false)
	variant(p, "v2", "Size=M", domain.NewMoneyFromInt(150), nil, true)

	res, err := NewCombinationFilter(NewVariantPricer()).Build(p, "v2")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Size": "M"}, res.Default)
	assert.Equal(t, int64(130), res.Price) // 150 - 20% of 100
	assert.Equal(t, int64(150), res.RegularPrice)
	assert.True(t, res.Sale)
}

func TestCombinationFilter_ProductPricesWithoutSelection(t *testing.T) {
	p := product(t, "p", domain.NewMoney(9999, 100), 10)
	res, err := NewCombinationFilter(NewVariantPricer()).Build(p, "")
	require.NoError(t, err)
	assert.Equal(t, int64(90), res.Price) // 89.991
	assert.Equal(t, int64(100), res.RegularPrice)
	assert.Empty(t, res.Default)
	assert.NotNil(t, res.Default)
}

func TestCombinationFilter_UnknownVariant(t *testing.T) {
	p := product(t, "p", domain.NewMoneyFromInt(100), 0)
	variant(p, "v1", "Size=S", nil, nil, false)

	_, err := NewCombinationFilter(NewVariantPricer()).Build(p, "nope")
	require.ErrorIs(t, err, domain.ErrVariantNotFound)
	assert.Contains(t, err.Error(), "nope")
}

func TestCombinationFilter_MalformedHash(t *testing.T) {
	p := product(t, "p", domain.NewMoneyFromInt(100), 0)
	variant(p, "v1", "Size", nil, nil, false)

	_, err := NewCombinationFilter(NewVariantPricer()).Build(p, "")
	require.ErrorIs(t, err, domain.ErrInvalidRelationHash)
}
