package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Ceil(t *testing.T) {
	assert.Equal(t, int64(20), NewMoney(1999, 100).Ceil())
	assert.Equal(t, int64(20), NewMoneyFromInt(20).Ceil())
	assert.Equal(t, int64(0), Zero().Ceil())
	assert.Equal(t, int64(-1), NewMoney(-150, 100).Ceil())
}

func TestMoney_Near(t *testing.T) {
	a := NewMoney(1000, 100)
	assert.True(t, a.Near(NewMoney(10009, 1000)))
	assert.False(t, a.Near(NewMoney(1001, 100)))
	assert.False(t, a.Near(nil))
}

func TestNewMoneyFromFloat(t *testing.T) {
	assert.True(t, NewMoneyFromFloat(19.99).Equals(NewMoney(1999, 100)))
	assert.Equal(t, "0.10", NewMoneyFromFloat(0.1).String())
}

func TestSale_DiscountOn(t *testing.T) {
	s, err := NewSale(12.5)
	require.NoError(t, err)
	assert.True(t, s.DiscountOn(NewMoneyFromInt(80)).Equals(NewMoneyFromInt(10)))
	assert.True(t, s.ApplyTo(NewMoneyFromInt(80)).Equals(NewMoneyFromInt(70)))

	none, err := NewSale(0)
	require.NoError(t, err)
	assert.Nil(t, none)
}
