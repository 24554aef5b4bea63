package related_products

import (
	"context"
	"errors"
	"fmt"

	"github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain/services"
	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/list_products"
	"github.com/murkotick/catalog-engine/internal/logging"
	"github.com/murkotick/catalog-engine/internal/metrics"
)

const (
	// DefaultLimit is used when a caller passes a non-positive limit.
	DefaultLimit = 8
	// MaxLimit caps what a caller may ask for when no cap is configured.
	MaxLimit = 50
)

// Handler recommends related products through the cascade: direct relations,
// then the main category, then secondary categories, then top sellers.
type Handler struct {
	readModel    contracts.ReadModel
	related      contracts.RelatedReader
	products     *list_products.Handler
	defaultLimit int
	maxLimit     int
}

// NewHandler falls back to DefaultLimit and MaxLimit for non-positive values.
// The default never exceeds the cap.
func NewHandler(r contracts.ReadModel, related contracts.RelatedReader, defaultLimit, maxLimit int) *Handler {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	return &Handler{
		readModel:    r,
		related:      related,
		products:     list_products.NewHandler(r),
		defaultLimit: min(defaultLimit, maxLimit),
		maxLimit:     maxLimit,
	}
}

// ByProduct returns up to limit recommendations for productID.
func (h *Handler) ByProduct(ctx context.Context, productID string, limit int) ([]*dto.ProductSummaryDTO, error) {
	source, err := h.load(ctx, productID)
	if err != nil {
		return nil, err
	}
	ids, err := h.recommend(ctx, source, h.limit(limit))
	if err != nil {
		return nil, err
	}
	return h.products.Execute(ctx, ids)
}

// ByCollection recommends for a set of products such as a cart. Sources are
// visited by position desc; candidates recommended by more sources rank first.
// Products of the collection itself are never returned.
func (h *Handler) ByCollection(ctx context.Context, productIDs []string, limit int) ([]*dto.ProductSummaryDTO, error) {
	limit = h.limit(limit)

	exclude := make(map[string]struct{}, len(productIDs))
	sources := make([]*domain.Product, 0, len(productIDs))
	for _, id := range productIDs {
		if _, dup := exclude[id]; dup {
			continue
		}
		exclude[id] = struct{}{}

		p, err := h.load(ctx, id)
		if errors.Is(err, domain.ErrProductNotFound) {
			logging.Ctx(ctx).Debug().Str("product_id", id).Msg("collection product not found")
			continue
		}
		if err != nil {
			return nil, err
		}
		sources = append(sources, p)
	}

	recommendations := make([][]string, 0, len(sources))
	for _, source := range services.SortByPositionDesc(sources) {
		ids, err := h.recommend(ctx, source, limit)
		if err != nil {
			return nil, err
		}
		recommendations = append(recommendations, ids)
	}

	return h.products.Execute(ctx, services.RankByFrequency(recommendations, exclude, limit))
}

func (h *Handler) recommend(ctx context.Context, source *domain.Product, limit int) ([]string, error) {
	sel := services.NewRelatedSelection(source, limit)

	tiers := []struct {
		name  string
		fetch func(n int) ([]string, error)
	}{
		{"direct", func(n int) ([]string, error) {
			return h.related.DirectRelations(ctx, source.ID(), n)
		}},
		{"main_category", func(n int) ([]string, error) {
			if source.MainCategoryID() == "" {
				return nil, nil
			}
			return h.related.ActiveInMainCategory(ctx, source.MainCategoryID(), n)
		}},
		{"category", func(n int) ([]string, error) {
			return h.related.ActiveInCategories(ctx, secondaryCategories(source), source.ID(), n)
		}},
		{"top_sellers", func(n int) ([]string, error) {
			return h.related.TopSellers(ctx, n)
		}},
	}

	for _, tier := range tiers {
		if sel.Full() {
			break
		}
		ids, err := tier.fetch(sel.FetchSize())
		if err != nil {
			return nil, fmt.Errorf("related tier %s for %s: %w", tier.name, source.ID(), err)
		}
		before := len(sel.IDs())
		sel.Offer(ids)
		if n := len(sel.IDs()) - before; n > 0 {
			metrics.RelatedTierHits.WithLabelValues(tier.name).Add(float64(n))
		}
	}

	logging.Ctx(ctx).Debug().
		Str("product_id", source.ID()).
		Int("limit", limit).
		Int("found", len(sel.IDs())).
		Msg("related products selected")
	return sel.IDs(), nil
}

func (h *Handler) load(ctx context.Context, productID string) (*domain.Product, error) {
	p, err := h.readModel.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return p.ToDomain()
}

func (h *Handler) limit(limit int) int {
	if limit <= 0 {
		return h.defaultLimit
	}
	return min(limit, h.maxLimit)
}

func secondaryCategories(p *domain.Product) []string {
	out := make([]string, 0, len(p.CategoryIDs()))
	for _, id := range p.CategoryIDs() {
		if id != p.MainCategoryID() {
			out = append(out, id)
		}
	}
	return out
}
