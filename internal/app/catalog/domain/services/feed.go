package services

import (
	"cmp"
	"slices"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
)

// pageRadius is how many neighbours of the current page the page list shows.
const pageRadius = 2

// FeedPage is the windowed result of a feed computation, before hydration.
type FeedPage struct {
	ProductIDs  []string
	Statistic   domain.FeedStatistic
	Page        int
	Limit       int
	LastPage    int
	PageNumbers []int
}

// FeedAssembler turns raw feed candidates into a page.
type FeedAssembler struct{}

// NewFeedAssembler creates a FeedAssembler.
func NewFeedAssembler() *FeedAssembler {
	return &FeedAssembler{}
}

// Assemble de-duplicates and orders candidates, narrows them by the filter's
// price range and cuts the requested page.
// Count covers the price-filtered list; the minimal and maximal prices cover every candidate.
func (fa *FeedAssembler) Assemble(candidates []domain.FeedCandidate, filter domain.FeedFilter) FeedPage {
	unique := SortCandidates(DedupeCandidates(candidates), filter.Ordering)
	filtered := FilterByPrice(unique, filter.PriceFrom, filter.PriceTo)

	ids := make([]string, len(filtered))
	for i, c := range filtered {
		ids[i] = c.ProductID
	}

	minPrice, maxPrice := PriceBounds(unique)
	last := LastPage(len(ids), filter.Limit)

	return FeedPage{
		ProductIDs: Window(ids, filter.Page, filter.Limit),
		Statistic: domain.FeedStatistic{
			Count:        len(ids),
			MinimalPrice: minPrice,
			MaximalPrice: maxPrice,
		},
		Page:        filter.Page,
		Limit:       filter.Limit,
		LastPage:    last,
		PageNumbers: PageNumbers(1, filter.Page, last),
	}
}

// DedupeCandidates keeps the first occurrence of every product id.
func DedupeCandidates(candidates []domain.FeedCandidate) []domain.FeedCandidate {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]domain.FeedCandidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.ProductID]; ok {
			continue
		}
		seen[c.ProductID] = struct{}{}
		out = append(out, c)
	}
	return out
}

// SortCandidates orders candidates for the given mode. The sort is stable, so
// ties keep the storage order.
func SortCandidates(candidates []domain.FeedCandidate, ordering domain.FeedOrdering) []domain.FeedCandidate {
	out := slices.Clone(candidates)
	switch ordering {
	case domain.OrderingCheapest:
		slices.SortStableFunc(out, func(a, b domain.FeedCandidate) int {
			return a.Price.Cmp(b.Price)
		})
	case domain.OrderingMostExpensive:
		slices.SortStableFunc(out, func(a, b domain.FeedCandidate) int {
			return b.Price.Cmp(a.Price)
		})
	default:
		slices.SortStableFunc(out, func(a, b domain.FeedCandidate) int {
			return cmp.Compare(b.Position, a.Position)
		})
	}
	return out
}

// FilterByPrice keeps candidates with from <= price <= to. Nil bounds are open.
func FilterByPrice(candidates []domain.FeedCandidate, from, to *domain.Money) []domain.FeedCandidate {
	if from == nil && to == nil {
		return candidates
	}
	out := make([]domain.FeedCandidate, 0, len(candidates))
	for _, c := range candidates {
		if from != nil && c.Price.LessThan(from) {
			continue
		}
		if to != nil && c.Price.GreaterThan(to) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// PriceBounds returns the minimal and maximal candidate price, zero for an empty list.
func PriceBounds(candidates []domain.FeedCandidate) (*domain.Money, *domain.Money) {
	if len(candidates) == 0 {
		return domain.Zero(), domain.Zero()
	}
	lo, hi := candidates[0].Price, candidates[0].Price
	for _, c := range candidates[1:] {
		if c.Price.LessThan(lo) {
			lo = c.Price
		}
		if c.Price.GreaterThan(hi) {
			hi = c.Price
		}
	}
	return lo, hi
}

// Window returns the ids of a 1-based page. Pages past the end are empty.
func Window(ids []string, page, limit int) []string {
	if limit <= 0 || page <= 0 || len(ids) == 0 {
		return []string{}
	}
	if page-1 > (len(ids)-1)/limit {
		return []string{}
	}
	offset := (page - 1) * limit
	end := offset + min(limit, len(ids)-offset)
	return ids[offset:end]
}

// LastPage is the number of pages needed for count items, at least one.
func LastPage(count, limit int) int {
	if limit <= 0 || count <= limit {
		return 1
	}
	return (count + limit - 1) / limit
}

// PageNumbers lists first, the pages within pageRadius of page that lie strictly
// between first and last, and last.
func PageNumbers(first, page, last int) []int {
	pages := []int{first}
	lo := first + 1
	if page > lo+pageRadius {
		lo = page - pageRadius
	}
	hi := last - 1
	if page < hi-pageRadius {
		hi = page + pageRadius
	}
	for p := lo; p <= hi; p++ {
		pages = append(pages, p)
	}
	if last != first {
		pages = append(pages, last)
	}
	return pages
}
