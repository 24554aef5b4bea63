package domain

import (
	"fmt"
	"math/big"
	"strconv"
)

// priceTolerance is the smallest price difference the catalog distinguishes (0.01).
var priceTolerance = big.NewRat(1, 100)

// Money represents a monetary value with precise decimal arithmetic.
// It uses big.Rat internally to avoid floating-point precision issues.
// Money is immutable - all operations return new instances.
type Money struct {
	amount *big.Rat
}

// NewMoney creates a new Money instance from numerator and denominator.
// For example: NewMoney(1999, 100) represents 19.99
func NewMoney(numerator, denominator int64) *Money {
	if denominator == 0 {
		panic("money: denominator cannot be zero")
	}
	return &Money{
		amount: big.NewRat(numerator, denominator),
	}
}

// NewMoneyFromInt creates Money holding a whole amount.
func NewMoneyFromInt(units int64) *Money {
	return &Money{amount: new(big.Rat).SetInt64(units)}
}

// NewMoneyFromDecimal creates Money from a decimal string.
// For example: "19.99", "100.00", "0.01"
func NewMoneyFromDecimal(decimal string) (*Money, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(decimal); !ok {
		return nil, fmt.Errorf("invalid decimal format: %s", decimal)
	}
	return &Money{amount: rat}, nil
}

// NewMoneyFromFloat creates Money from the shortest decimal representation of f,
// so 19.99 becomes exactly 1999/100 rather than its binary approximation.
func NewMoneyFromFloat(f float64) *Money {
	rat, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'f', -1, 64))
	if !ok {
		return Zero()
	}
	return &Money{amount: rat}
}

// NewMoneyFromRat creates Money from an existing big.Rat.
// The rat is copied to ensure immutability.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{amount: big.NewRat(0, 1)}
	}
	return &Money{
		amount: new(big.Rat).Set(rat),
	}
}

// Zero returns a Money instance representing zero.
func Zero() *Money {
	return &Money{amount: big.NewRat(0, 1)}
}

// Add returns a new Money that is the sum of m and other.
func (m *Money) Add(other *Money) *Money {
	result := new(big.Rat).Add(m.amount, other.amount)
	return &Money{amount: result}
}

// Subtract returns a new Money that is the difference of m and other.
func (m *Money) Subtract(other *Money) *Money {
	result := new(big.Rat).Sub(m.amount, other.amount)
	return &Money{amount: result}
}

// MultiplyByRat multiplies Money by an exact rational factor.
func (m *Money) MultiplyByRat(factor *big.Rat) *Money {
	result := new(big.Rat).Mul(m.amount, factor)
	return &Money{amount: result}
}

// Abs returns the absolute value of m.
func (m *Money) Abs() *Money {
	return &Money{amount: new(big.Rat).Abs(m.amount)}
}

// Near reports whether m and other differ by less than 0.01.
func (m *Money) Near(other *Money) bool {
	if other == nil {
		return false
	}
	diff := new(big.Rat).Sub(m.amount, other.amount)
	return diff.Abs(diff).Cmp(priceTolerance) < 0
}

// Ceil rounds the amount up to the nearest whole unit.
func (m *Money) Ceil() int64 {
	q, r := new(big.Int).QuoRem(m.amount.Num(), m.amount.Denom(), new(big.Int))
	if r.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return q.Int64()
}

// IsNegative returns true if the money amount is negative.
func (m *Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

// Cmp compares m and other and returns -1, 0 or +1.
func (m *Money) Cmp(other *Money) int {
	return m.amount.Cmp(other.amount)
}

// GreaterThan returns true if m is greater than other.
func (m *Money) GreaterThan(other *Money) bool {
	return m.amount.Cmp(other.amount) > 0
}

// LessThan returns true if m is less than other.
func (m *Money) LessThan(other *Money) bool {
	return m.amount.Cmp(other.amount) < 0
}

// Equals returns true if m equals other.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Cmp(other.amount) == 0
}

// Rat returns a copy of the internal big.Rat.
// Spanner stores it directly in NUMERIC columns.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.amount)
}

// String returns the amount with two decimals, e.g. "19.99".
func (m *Money) String() string {
	return m.amount.FloatString(2)
}
