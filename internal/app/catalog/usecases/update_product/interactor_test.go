package update_product

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
	"github.com/murkotick/catalog-engine/internal/app/catalog/repo"
	"github.com/murkotick/catalog-engine/internal/pkg/clock"
	commitplan "github.com/murkotick/catalog-engine/internal/pkg/committer"
)

type fakeReadModel struct {
	product *dto.ProductDTO
}

func (f *fakeReadModel) GetProduct(_ context.Context, id string) (*dto.ProductDTO, error) {
	if f.product == nil || f.product.ProductID != id {
		return nil, domain.ErrProductNotFound
	}
	return f.product, nil
}

func (f *fakeReadModel) ListProducts(context.Context, []string) ([]*dto.ProductDTO, error) {
	return nil, nil
}

func (f *fakeReadModel) ColorNames(context.Context) ([]string, error) {
	return nil, nil
}

type recordingCommitter struct {
	plans []*commitplan.Plan
}

func (c *recordingCommitter) Apply(_ context.Context, plan *commitplan.Plan) error {
	c.plans = append(c.plans, plan)
	return nil
}

func setup() (*Interactor, *recordingCommitter) {
	rm := &fakeReadModel{product: &dto.ProductDTO{
		ProductID: "p1", Slug: "p1", Name: "Sofa", Price: big.NewRat(900, 1), Position: 10, Active: true,
	}}
	committer := &recordingCommitter{}
	return NewInteractor(repo.NewProductRepo(), committer, rm, clock.NewFake(time.Now())), committer
}

func TestExecute_UpdatesPosition(t *testing.T) {
	it, committer := setup()

	pos := int64(5000)
	require.NoError(t, it.Execute(context.Background(), Request{ProductID: "p1", Position: &pos}))
	require.Len(t, committer.plans, 1)
	assert.Equal(t, 1, committer.plans[0].Len())
}

func TestExecute_NoopUpdates(t *testing.T) {
	it, committer := setup()

	require.NoError(t, it.Execute(context.Background(), Request{ProductID: "p1"}))

	same := int64(10)
	require.NoError(t, it.Execute(context.Background(), Request{ProductID: "p1", Position: &same}))
	assert.Empty(t, committer.plans)
}
