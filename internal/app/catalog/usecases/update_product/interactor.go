package update_product

import (
	"context"

	contracts "github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/pkg/clock"
	commitplan "github.com/murkotick/catalog-engine/internal/pkg/committer"
)

// Request represents a partial product update. Nil fields are left unchanged.
type Request struct {
	ProductID string
	Position  *int64
}

// Interactor applies partial updates using the Golden Mutation Pattern.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(repo contracts.ProductRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: repo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	// 1. Load aggregate via read model
	dtoOut, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		return err
	}
	product, err := dtoOut.ToDomain()
	if err != nil {
		return err
	}

	// 2. Apply updates; the position is clamped by the domain
	if req.Position != nil {
		product.SetPosition(*req.Position, now)
	}

	// 3. Persist only dirty fields
	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.UpdateMut(product))
	if plan.IsEmpty() {
		return nil
	}
	return it.Committer.Apply(ctx, plan)
}
