package related_products

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
)

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

func (f *fakeReadModel) add(id string, position int64, mainCategory string, categories ...string) *dto.ProductDTO {
	p := &dto.ProductDTO{
		ProductID:      id,
		Slug:           id,
		Name:           id,
		Price:          big.NewRat(100, 1),
		Position:       position,
		Active:         true,
		MainCategoryID: mainCategory,
		CategoryIDs:    categories,
	}
	f.products[id] = p
	return p
}

type fakeRelated struct {
	direct       map[string][]string
	mainCategory map[string][]string
	categories   map[string][]string
	top          []string
	calls        []string
	fetched      []int
}

func head(ids []string, n int) []string {
	if len(ids) > n {
		return ids[:n]
	}
	return ids
}

func (f *fakeRelated) DirectRelations(_ context.Context, productID string, limit int) ([]string, error) {
	f.calls = append(f.calls, "direct")
	f.fetched = append(f.fetched, limit)
	return head(f.direct[productID], limit), nil
}

func (f *fakeRelated) ActiveInMainCategory(_ context.Context, categoryID string, limit int) ([]string, error) {
	f.calls = append(f.calls, "main_category")
	return head(f.mainCategory[categoryID], limit), nil
}

func (f *fakeRelated) ActiveInCategories(_ context.Context, categoryIDs []string, excludeID string, limit int) ([]string, error) {
	f.calls = append(f.calls, "category")
	out := make([]string, 0)
	for _, c := range categoryIDs {
		for _, id := range f.categories[c] {
			if id != excludeID {
				out = append(out, id)
			}
		}
	}
	return head(out, limit), nil
}

func (f *fakeRelated) TopSellers(_ context.Context, limit int) ([]string, error) {
	f.calls = append(f.calls, "top_sellers")
	return head(f.top, limit), nil
}

func (f *fakeRelated) RelationExists(context.Context, string, string) (bool, error) {
	return false, nil
}

func ids(summaries []*dto.ProductSummaryDTO) []string {
	out := make([]string, len(summaries))
	for i, s := range summaries {
		out[i] = s.ProductID
	}
	return out
}

func catalog() (*fakeReadModel, *fakeRelated) {
	rm := &fakeReadModel{products: make(map[string]*dto.ProductDTO)}
	rel := &fakeRelated{
		direct:       map[string][]string{},
		mainCategory: map[string][]string{},
		categories:   map[string][]string{},
	}
	rm.add("src", 50, "lamps", "lamps", "lights")
	rm.add("d1", 1, "other")
	rm.add("d2", 2, "other")
	rel.direct["src"] = []string{"d1", "d2"}

	same := []string{"src", "d2"}
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("c%d", i)
		rm.add(id, int64(40-i), "lamps")
		same = append(same, id)
	}
	rel.mainCategory["lamps"] = same
	return rm, rel
}

func TestByProduct_DirectThenCategory(t *testing.T) {
	rm, rel := catalog()
	h := NewHandler(rm, rel, 0, 0)

	got, err := h.ByProduct(context.Background(), "src", 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2", "c0", "c1", "c2", "c3", "c4", "c5"}, ids(got))
	assert.Equal(t, []string{"direct", "main_category"}, rel.calls)
}

func TestByProduct_FallsThroughTiers(t *testing.T) {
	rm, rel := catalog()
	rel.mainCategory["lamps"] = []string{"c0"}
	rel.categories["lights"] = []string{"src", "c1", "c0"}
	rel.top = []string{"c9", "c1", "c8", "c7"}
	h := NewHandler(rm, rel, 0, 0)

	got, err := h.ByProduct(context.Background(), "src", 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2", "c0", "c1", "c9", "c8"}, ids(got))
	assert.Equal(t, []string{"direct", "main_category", "category", "top_sellers"}, rel.calls)
}

func TestByProduct_DefaultLimit(t *testing.T) {
	rm, rel := catalog()
	h := NewHandler(rm, rel, 0, 0)

	got, err := h.ByProduct(context.Background(), "src", 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLimit)
}

func TestByProduct_LimitIsCapped(t *testing.T) {
	rm, rel := catalog()
	h := NewHandler(rm, rel, 0, 5)

	got, err := h.ByProduct(context.Background(), "src", 1<<40)
	require.NoError(t, err)
	assert.Len(t, got, 5)
	assert.Equal(t, []int{6}, rel.fetched)
}

func TestByCollection_LimitIsCapped(t *testing.T) {
	rm, rel := catalog()
	h := NewHandler(rm, rel, 0, 3)

	got, err := h.ByCollection(context.Background(), []string{"src"}, 1<<40)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestNewHandler_DefaultNeverExceedsCap(t *testing.T) {
	rm, rel := catalog()
	h := NewHandler(rm, rel, 20, 4)

	got, err := h.ByProduct(context.Background(), "src", 0)
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

// An inactive source gets no recommendations at all, whatever the candidates' own status.
func TestByProduct_InactiveSourceYieldsNothing(t *testing.T) {
	rm, rel := catalog()
	rm.products["src"].Active = false
	h := NewHandler(rm, rel, 0, 0)

	got, err := h.ByProduct(context.Background(), "src", 8)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestByProduct_NotFound(t *testing.T) {
	rm, rel := catalog()
	h := NewHandler(rm, rel, 0, 0)

	_, err := h.ByProduct(context.Background(), "missing", 8)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestByCollection_RanksByFrequency(t *testing.T) {
	rm := &fakeReadModel{products: make(map[string]*dto.ProductDTO)}
	rel := &fakeRelated{
		direct:       map[string][]string{},
		mainCategory: map[string][]string{},
		categories:   map[string][]string{},
	}
	rm.add("a", 10, "")
	rm.add("b", 20, "")
	for _, id := range []string{"x", "y", "z"} {
		rm.add(id, 1, "")
	}
	rel.direct["a"] = []string{"x", "y", "b"}
	rel.direct["b"] = []string{"z", "y", "a"}

	h := NewHandler(rm, rel, 0, 0)
	got, err := h.ByCollection(context.Background(), []string{"a", "b", "missing"}, 3)
	require.NoError(t, err)
	// b is visited first (higher position); y is recommended by both sources.
	assert.Equal(t, []string{"y", "z", "x"}, ids(got))
}
