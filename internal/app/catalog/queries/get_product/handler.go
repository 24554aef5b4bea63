package get_product

import (
	"context"

	"github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
)

// Result is a product with its variants and the display price.
type Result struct {
	Product      *dto.ProductDTO
	Summary      *dto.ProductSummaryDTO
	VariantCount int
}

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, productID string) (*Result, error) {
	p, err := h.readModel.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	product, err := p.ToDomain()
	if err != nil {
		return nil, err
	}
	return &Result{
		Product:      p,
		Summary:      dto.SummaryFromDomain(product),
		VariantCount: len(product.Variants()),
	}, nil
}
