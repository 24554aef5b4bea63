package domain

import (
	"fmt"
	"math/big"
)

// Sale is a product-level percentage discount. A zero percentage is not a sale,
// so constructors return a nil *Sale for it.
// Sale is immutable once created.
type Sale struct {
	percentage *big.Rat // 0-100 scale
}

// NewSale creates a Sale from a 0-100 percentage (20 for 20% off).
func NewSale(percentage float64) (*Sale, error) {
	if percentage == 0 {
		return nil, nil
	}
	if percentage < 0 || percentage > 100 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSalePercentage, percentage)
	}
	return &Sale{percentage: NewMoneyFromFloat(percentage).Rat()}, nil
}

// NewSaleFromRat creates a Sale from a stored 0-100 percentage.
func NewSaleFromRat(percentage *big.Rat) (*Sale, error) {
	if percentage == nil || percentage.Sign() == 0 {
		return nil, nil
	}
	if percentage.Sign() < 0 || percentage.Cmp(big.NewRat(100, 1)) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSalePercentage, percentage.FloatString(2))
	}
	return &Sale{percentage: new(big.Rat).Set(percentage)}, nil
}

// Percentage returns the sale percentage as a float64 (0-100 scale).
func (s *Sale) Percentage() float64 {
	f, _ := s.percentage.Float64()
	return f
}

// PercentageRat returns a copy of the sale percentage (0-100 scale).
func (s *Sale) PercentageRat() *big.Rat {
	return new(big.Rat).Set(s.percentage)
}

// DiscountOn returns price * percentage / 100.
func (s *Sale) DiscountOn(price *Money) *Money {
	factor := new(big.Rat).Quo(s.percentage, big.NewRat(100, 1))
	return price.MultiplyByRat(factor)
}

// ApplyTo returns the price after the sale discount.
func (s *Sale) ApplyTo(price *Money) *Money {
	return price.Subtract(s.DiscountOn(price))
}

// Equals reports whether two sales (either possibly nil) have the same percentage.
func (s *Sale) Equals(other *Sale) bool {
	if s == nil || other == nil {
		return s == nil && other == nil
	}
	return s.percentage.Cmp(other.percentage) == 0
}

func (s *Sale) String() string {
	return fmt.Sprintf("%s%% off", s.percentage.FloatString(2))
}
