package catalog_feed

import (
	"context"
	"fmt"

	"github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain/services"
	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/list_products"
	"github.com/murkotick/catalog-engine/internal/logging"
	"github.com/murkotick/catalog-engine/internal/metrics"
	"github.com/murkotick/catalog-engine/internal/validation"
)

type Handler struct {
	feed      contracts.FeedReader
	products  *list_products.Handler
	assembler *services.FeedAssembler
	maxLimit  int
}

// NewHandler builds the feed handler. Limits above maxLimit are clamped; a
// non-positive maxLimit disables the clamp.
func NewHandler(feed contracts.FeedReader, readModel contracts.ReadModel, maxLimit int) *Handler {
	return &Handler{
		feed:      feed,
		products:  list_products.NewHandler(readModel),
		assembler: services.NewFeedAssembler(),
		maxLimit:  maxLimit,
	}
}

func (h *Handler) Execute(ctx context.Context, filter domain.FeedFilter) (*dto.FeedDTO, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	if h.maxLimit > 0 && filter.Limit > h.maxLimit {
		filter.Limit = h.maxLimit
	}

	var categoryIDs []string
	if filter.MainCategoryID != "" {
		ids, err := h.feed.DescendantCategoryIDs(ctx, filter.MainCategoryID)
		if err != nil {
			return nil, fmt.Errorf("expand category %s: %w", filter.MainCategoryID, err)
		}
		categoryIDs = ids
	}

	candidates, err := h.feed.FeedCandidates(ctx, categoryIDs, filter.BrandIDs, filter.Ordering)
	if err != nil {
		return nil, fmt.Errorf("select feed candidates: %w", err)
	}
	metrics.FeedCandidates.Observe(float64(len(candidates)))

	page := h.assembler.Assemble(candidates, filter)

	summaries, err := h.products.Execute(ctx, page.ProductIDs)
	if err != nil {
		return nil, fmt.Errorf("hydrate feed page: %w", err)
	}

	logging.Ctx(ctx).Debug().
		Int("candidates", len(candidates)).
		Int("count", page.Statistic.Count).
		Int("page", page.Page).
		Msg("feed assembled")

	return &dto.FeedDTO{
		Products:     summaries,
		Count:        page.Statistic.Count,
		MinimalPrice: page.Statistic.MinimalPrice.String(),
		MaximalPrice: page.Statistic.MaximalPrice.String(),
		Page:         page.Page,
		Limit:        page.Limit,
		LastPage:     page.LastPage,
		PageNumbers:  page.PageNumbers,
	}, nil
}

func validateFilter(filter domain.FeedFilter) error {
	if err := validation.Struct(filter); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFeedFilter, err)
	}
	if filter.PriceFrom != nil && filter.PriceFrom.IsNegative() {
		return fmt.Errorf("%w: negative price from", domain.ErrInvalidFeedFilter)
	}
	if filter.PriceTo != nil && filter.PriceTo.IsNegative() {
		return fmt.Errorf("%w: negative price to", domain.ErrInvalidFeedFilter)
	}
	if filter.PriceFrom != nil && filter.PriceTo != nil && filter.PriceFrom.GreaterThan(filter.PriceTo) {
		return fmt.Errorf("%w: price from %s exceeds price to %s", domain.ErrInvalidFeedFilter, filter.PriceFrom, filter.PriceTo)
	}
	return nil
}
