package domain

// PriceRounder turns a raw price into a display price.
type PriceRounder struct {
	price         *Money
	preferEndZero bool
}

// NewPriceRounder fails with ErrNegativePrice for negative input.
func NewPriceRounder(price *Money, preferEndZero bool) (*PriceRounder, error) {
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	return &PriceRounder{price: price, preferEndZero: preferEndZero}, nil
}

// ToInt returns the price rounded up to a whole unit.
func (r *PriceRounder) ToInt() int64 {
	return r.price.Ceil()
}

// SmartRound rounds to a retail-looking ending. A ceiled price whose last digit is
// 2..6 drops to the lower multiple of ten; anything else rises to the next price
// ending in 9 (or in 0 with preferEndZero).
func (r *PriceRounder) SmartRound() int64 {
	c := r.price.Ceil()
	d := c % 10
	if d > 1 && d <= 6 {
		return c - d
	}
	var end int64 = 9
	if r.preferEndZero {
		end = 10
	}
	return c + end - d
}
