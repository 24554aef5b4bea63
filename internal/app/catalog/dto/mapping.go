package dto

import (
	"math/big"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
)

// ToDomain reconstructs the product aggregate, variants included.
func (p *ProductDTO) ToDomain() (*domain.Product, error) {
	sale, err := domain.NewSaleFromRat(p.SalePercentage)
	if err != nil {
		return nil, err
	}

	product := domain.ReconstructProduct(domain.ProductSnapshot{
		ID:             p.ProductID,
		Slug:           p.Slug,
		Name:           p.Name,
		Price:          optionalMoney(p.Price),
		Sale:           sale,
		Position:       p.Position,
		Active:         p.Active,
		SoldOut:        p.SoldOut,
		BrandID:        p.BrandID,
		MainCategoryID: p.MainCategoryID,
		CategoryIDs:    p.CategoryIDs,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	})

	for _, v := range p.Variants {
		domain.ReconstructVariant(product, domain.VariantSnapshot{
			ID:                v.VariantID,
			RelationHash:      v.RelationHash,
			Price:             optionalMoney(v.Price),
			PriceAddition:     optionalMoney(v.PriceAddition),
			SoldOut:           v.SoldOut,
			WarehouseQuantity: v.WarehouseQuantity,
			CreatedAt:         v.CreatedAt,
			UpdatedAt:         v.UpdatedAt,
		})
	}
	return product, nil
}

// SummaryFromDomain builds the compact feed/recommendation shape.
func SummaryFromDomain(p *domain.Product) *ProductSummaryDTO {
	s := &ProductSummaryDTO{
		ProductID: p.ID(),
		Slug:      p.Slug(),
		Name:      p.Name(),
		Price:     p.Price().String(),
		SalePrice: p.SalePrice().String(),
		IsSale:    p.IsSale(),
		SoldOut:   p.IsSoldOut(),
		Position:  p.Position(),
	}
	if r, err := domain.NewPriceRounder(p.SalePrice(), false); err == nil {
		s.DisplayPrice = r.SmartRound()
	}
	return s
}

func optionalMoney(amount *big.Rat) *domain.Money {
	if amount == nil {
		return nil
	}
	return domain.NewMoneyFromRat(amount)
}
