package catalog_feed

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
)

type fakeFeed struct {
	descendants   map[string][]string
	candidates    []domain.FeedCandidate
	gotCategories []string
	gotBrands     []string
}

func (f *fakeFeed) DescendantCategoryIDs(_ context.Context, categoryID string) ([]string, error) {
	return f.descendants[categoryID], nil
}

func (f *fakeFeed) FeedCandidates(_ context.Context, categoryIDs, brandIDs []string, _ domain.FeedOrdering) ([]domain.FeedCandidate, error) {
	f.gotCategories = categoryIDs
	f.gotBrands = brandIDs
	return f.candidates, nil
}

type fakeReadModel struct {
	products map[string]*dto.ProductDTO
}

func (f *fakeReadModel) GetProduct(_ context.Context, id string) (*dto.ProductDTO, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProductNotFound
}

func (f *fakeReadModel) ListProducts(_ context.Context, ids []string) ([]*dto.ProductDTO, error) {
	out := make([]*dto.ProductDTO, 0, len(ids))
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeReadModel) ColorNames(context.Context) ([]string, error) {
	return nil, nil
}

func seed(n int) (*fakeFeed, *fakeReadModel) {
	feed := &fakeFeed{}
	rm := &fakeReadModel{products: make(map[string]*dto.ProductDTO)}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("p%02d", i)
		price := int64(100 + i)
		feed.candidates = append(feed.candidates, domain.FeedCandidate{
			ProductID: id,
			Price:     domain.NewMoneyFromInt(price),
			Position:  int64(n - i),
		})
		rm.products[id] = &dto.ProductDTO{
			ProductID: id,
			Slug:      id,
			Name:      id,
			Price:     big.NewRat(price, 1),
			Active:    true,
		}
	}
	return feed, rm
}

func filter(page, limit int) domain.FeedFilter {
	return domain.FeedFilter{Ordering: domain.OrderingSmart, Page: page, Limit: limit}
}

func TestHandler_Pagination(t *testing.T) {
	feed, rm := seed(25)
	h := NewHandler(feed, rm, 100)

	res, err := h.Execute(context.Background(), filter(3, 10))
	require.NoError(t, err)
	require.Len(t, res.Products, 5)
	assert.Equal(t, "p20", res.Products[0].ProductID)
	assert.Equal(t, 25, res.Count)
	assert.Equal(t, 3, res.LastPage)
	assert.Equal(t, []int{1, 2, 3}, res.PageNumbers)

	res, err = h.Execute(context.Background(), filter(4, 10))
	require.NoError(t, err)
	assert.Empty(t, res.Products)
	assert.Equal(t, 25, res.Count)
}

func TestHandler_PriceRangeKeepsUnfilteredBounds(t *testing.T) {
	feed, rm := seed(10)
	h := NewHandler(feed, rm, 0)

	f := filter(1, 20)
	f.PriceFrom = domain.NewMoneyFromInt(103)
	f.PriceTo = domain.NewMoneyFromInt(105)

	res, err := h.Execute(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Len(t, res.Products, 3)
	assert.Equal(t, "100.00", res.MinimalPrice)
	assert.Equal(t, "109.00", res.MaximalPrice)
}

func TestHandler_DeduplicatesCandidates(t *testing.T) {
	feed, rm := seed(3)
	feed.candidates = append(feed.candidates, feed.candidates...)
	h := NewHandler(feed, rm, 0)

	res, err := h.Execute(context.Background(), filter(1, 10))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Len(t, res.Products, 3)
}

func TestHandler_ExpandsCategory(t *testing.T) {
	feed, rm := seed(1)
	feed.descendants = map[string][]string{"shoes": {"shoes", "boots", "sneakers"}}
	h := NewHandler(feed, rm, 0)

	f := filter(1, 10)
	f.MainCategoryID = "shoes"
	f.BrandIDs = []string{"acme"}

	_, err := h.Execute(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, []string{"shoes", "boots", "sneakers"}, feed.gotCategories)
	assert.Equal(t, []string{"acme"}, feed.gotBrands)
}

func TestHandler_ClampsLimit(t *testing.T) {
	feed, rm := seed(30)
	h := NewHandler(feed, rm, 20)

	res, err := h.Execute(context.Background(), filter(1, 50))
	require.NoError(t, err)
	assert.Equal(t, 20, res.Limit)
	assert.Len(t, res.Products, 20)
}

func TestHandler_EmptyFeed(t *testing.T) {
	h := NewHandler(&fakeFeed{}, &fakeReadModel{}, 0)

	res, err := h.Execute(context.Background(), filter(1, 10))
	require.NoError(t, err)
	assert.Empty(t, res.Products)
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, "0.00", res.MinimalPrice)
	assert.Equal(t, []int{1}, res.PageNumbers)
}

func TestHandler_InvalidFilter(t *testing.T) {
	h := NewHandler(&fakeFeed{}, &fakeReadModel{}, 0)

	tests := []struct {
		name   string
		filter domain.FeedFilter
	}{
		{"unknown ordering", domain.FeedFilter{Ordering: "random", Page: 1, Limit: 10}},
		{"zero page", domain.FeedFilter{Ordering: domain.OrderingCheapest, Page: 0, Limit: 10}},
		{"zero limit", domain.FeedFilter{Ordering: domain.OrderingCheapest, Page: 1}},
		{"inverted range", domain.FeedFilter{
			Ordering:  domain.OrderingCheapest,
			Page:      1,
			Limit:     10,
			PriceFrom: domain.NewMoneyFromInt(50),
			PriceTo:   domain.NewMoneyFromInt(10),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Execute(context.Background(), tt.filter)
			assert.ErrorIs(t, err, domain.ErrInvalidFeedFilter)
		})
	}
}

func TestWalkCategories(t *testing.T) {
	children := map[string][]string{
		"root": {"a", "b"},
		"a":    {"a1"},
		"a1":   {"root"},
	}
	assert.Equal(t, []string{"root", "a", "b", "a1"}, walkCategories("root", children))
	assert.Equal(t, []string{"leaf"}, walkCategories("leaf", children))
}

func TestHandler_HugePageIsEmpty(t *testing.T) {
	feed, rm := seed(25)
	h := NewHandler(feed, rm, 100)

	res, err := h.Execute(context.Background(), filter(math.MaxInt-2, 1))
	require.NoError(t, err)
	assert.Empty(t, res.Products)
	assert.Equal(t, 25, res.Count)
	assert.Equal(t, 25, res.LastPage)
	assert.Equal(t, []int{1, 25}, res.PageNumbers)
}
