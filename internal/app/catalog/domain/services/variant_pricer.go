package services

import (
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
)

// VariantPricer resolves the price a variant is sold at.
// It is stateless; all inputs come from the variant and its product.
type VariantPricer struct{}

// NewVariantPricer creates a new VariantPricer instance.
func NewVariantPricer() *VariantPricer {
	return &VariantPricer{}
}

// DefinedPrice is the variant's override (or the product price) minus the
// product sale when useSale is set. The sale amount is always taken from the
// product's base price, so an overridden variant loses the same amount as the
// product does. The price addition is not included.
func (vp *VariantPricer) DefinedPrice(v *domain.Variant, useSale bool) *domain.Money {
	product := v.Product()

	price := product.Price()
	if override := v.PriceOverride(); override != nil && !override.Abs().LessThan(domain.NewMoney(1, 100)) {
		price = override
	}

	if useSale && product.IsSale() {
		return price.Subtract(product.Sale().DiscountOn(product.Price()))
	}
	return price
}

// Price is ceil(DefinedPrice + addition), never below zero.
func (vp *VariantPricer) Price(v *domain.Variant, useSale bool) int64 {
	price := vp.DefinedPrice(v, useSale)
	if addition := v.PriceAddition(); addition != nil {
		price = price.Add(addition)
	}
	return max(price.Ceil(), 0)
}

// ProductPrice is the whole-unit price of a product without a selected variant.
func (vp *VariantPricer) ProductPrice(p *domain.Product, useSale bool) int64 {
	price := p.Price()
	if useSale {
		price = p.SalePrice()
	}
	return max(price.Ceil(), 0)
}
