package services

import (
	"cmp"
	"math"
	"slices"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
)

// RelatedSelection accumulates recommendations for one source product across
// the cascade tiers until the limit is reached.
type RelatedSelection struct {
	source   *domain.Product
	limit    int
	accepted []string
	seen     map[string]struct{}
}

// selectionPrealloc bounds the up-front allocation; larger selections grow on append.
const selectionPrealloc = 64

// NewRelatedSelection starts an empty selection for source.
func NewRelatedSelection(source *domain.Product, limit int) *RelatedSelection {
	limit = max(limit, 0)
	return &RelatedSelection{
		source:   source,
		limit:    limit,
		accepted: make([]string, 0, min(limit, selectionPrealloc)),
		seen:     make(map[string]struct{}),
	}
}

// Offer appends candidates that pass the filter, in order, until the selection is full.
//
// A candidate is dropped when it was already accepted or is the source itself.
// Every candidate is dropped while the source product is inactive or sold out;
// the candidate's own flags are not consulted.
func (s *RelatedSelection) Offer(candidateIDs []string) {
	if !s.source.IsActive() || s.source.IsSoldOut() {
		return
	}
	for _, id := range candidateIDs {
		if s.Full() {
			return
		}
		if id == s.source.ID() {
			continue
		}
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.accepted = append(s.accepted, id)
	}
}

// Full reports whether the limit has been reached.
func (s *RelatedSelection) Full() bool {
	return len(s.accepted) >= s.limit
}

// Remaining is the number of slots left.
func (s *RelatedSelection) Remaining() int {
	return s.limit - len(s.accepted)
}

// FetchSize is how many rows a tier should request: enough to fill the remaining
// slots even if every already accepted id and the source come back again.
func (s *RelatedSelection) FetchSize() int {
	return min(s.Remaining()+len(s.accepted), math.MaxInt-1) + 1
}

// IDs returns the accepted ids in acceptance order.
func (s *RelatedSelection) IDs() []string {
	return s.accepted
}

// SortByPositionDesc orders products by position, highest first, keeping input order on ties.
func SortByPositionDesc(products []*domain.Product) []*domain.Product {
	out := slices.Clone(products)
	slices.SortStableFunc(out, func(a, b *domain.Product) int {
		return cmp.Compare(b.Position(), a.Position())
	})
	return out
}

// RankByFrequency merges per-source recommendation lists. Ids in exclude are skipped;
// the rest are grouped by how many sources recommended them, most frequent first,
// with first-seen order inside a group.
func RankByFrequency(recommendations [][]string, exclude map[string]struct{}, limit int) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, ids := range recommendations {
		for _, id := range ids {
			if _, skip := exclude[id]; skip {
				continue
			}
			if _, ok := counts[id]; !ok {
				order = append(order, id)
			}
			counts[id]++
		}
	}

	slices.SortStableFunc(order, func(a, b string) int {
		return cmp.Compare(counts[b], counts[a])
	})
	if limit >= 0 && len(order) > limit {
		order = order[:limit]
	}
	return order
}
