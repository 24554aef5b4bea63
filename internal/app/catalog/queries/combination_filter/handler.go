package combination_filter

import (
	"context"

	"github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain/services"
)

// Handler builds the parameter picker for one product.
type Handler struct {
	readModel contracts.ReadModel
	filter    *services.CombinationFilter
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{
		readModel: r,
		filter:    services.NewCombinationFilter(services.NewVariantPricer()),
	}
}

// Execute preselects variantID when it is not empty.
func (h *Handler) Execute(ctx context.Context, productID, variantID string) (*services.CombinationFilterResult, error) {
	p, err := h.readModel.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	product, err := p.ToDomain()
	if err != nil {
		return nil, err
	}
	return h.filter.Build(product, variantID)
}
