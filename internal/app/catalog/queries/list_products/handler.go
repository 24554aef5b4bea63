package list_products

import (
	"context"

	"github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
)

// Handler hydrates product ids into summaries, preserving the order of ids.
type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute skips ids that no longer exist.
func (h *Handler) Execute(ctx context.Context, productIDs []string) ([]*dto.ProductSummaryDTO, error) {
	rows, err := h.readModel.ListProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*dto.ProductDTO, len(rows))
	for _, r := range rows {
		byID[r.ProductID] = r
	}

	out := make([]*dto.ProductSummaryDTO, 0, len(productIDs))
	for _, id := range productIDs {
		row, ok := byID[id]
		if !ok {
			continue
		}
		p, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, dto.SummaryFromDomain(p))
	}
	return out, nil
}
