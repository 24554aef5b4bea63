package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceRounder_RejectsNegative(t *testing.T) {
	_, err := NewPriceRounder(NewMoneyFromInt(-1), false)
	require.ErrorIs(t, err, ErrNegativePrice)
}

func TestPriceRounder_ToIntCeils(t *testing.T) {
	r, err := NewPriceRounder(NewMoney(10001, 100), false)
	require.NoError(t, err)
	assert.Equal(t, int64(101), r.ToInt())

	r, err = NewPriceRounder(NewMoneyFromInt(100), false)
	require.NoError(t, err)
	assert.Equal(t, int64(100), r.ToInt())
}

// TestPriceRounder_SmartRoundDigits walks every last digit with and without preferEndZero.
func TestPriceRounder_SmartRoundDigits(t *testing.T) {
	tests := []struct {
		price   int64
		nine    int64
		endZero int64
	}{
		{price: 100, nine: 109, endZero: 110},
		{price: 101, nine: 109, endZero: 110},
		{price: 102, nine: 100, endZero: 100},
		{price: 103, nine: 100, endZero: 100},
		{price: 104, nine: 100, endZero: 100},
		{price: 105, nine: 100, endZero: 100},
		{price: 106, nine: 100, endZero: 100},
		{price: 107, nine: 109, endZero: 110},
		{price: 108, nine: 109, endZero: 110},
		{price: 109, nine: 109, endZero: 110},
	}

	for _, tt := range tests {
		r, err := NewPriceRounder(NewMoneyFromInt(tt.price), false)
		require.NoError(t, err)
		assert.Equal(t, tt.nine, r.SmartRound(), "price %d", tt.price)

		r, err = NewPriceRounder(NewMoneyFromInt(tt.price), true)
		require.NoError(t, err)
		assert.Equal(t, tt.endZero, r.SmartRound(), "price %d preferEndZero", tt.price)
	}
}

func TestPriceRounder_SmartRoundCeilsFirst(t *testing.T) {
	// 103.20 ceils to 104, which drops to 100.
	r, err := NewPriceRounder(NewMoney(10320, 100), false)
	require.NoError(t, err)
	assert.Equal(t, int64(100), r.SmartRound())

	// 106.01 ceils to 107, which rises to 109.
	r, err = NewPriceRounder(NewMoney(10601, 100), false)
	require.NoError(t, err)
	assert.Equal(t, int64(109), r.SmartRound())
}

func TestPriceRounder_Zero(t *testing.T) {
	r, err := NewPriceRounder(Zero(), false)
	require.NoError(t, err)
	assert.Equal(t, int64(9), r.SmartRound())
}
