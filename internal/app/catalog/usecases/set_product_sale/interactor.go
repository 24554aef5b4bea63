package set_product_sale

import (
	"context"

	contracts "github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	shared "github.com/murkotick/catalog-engine/internal/app/catalog/usecases/shared"
	"github.com/murkotick/catalog-engine/internal/pkg/clock"
	commitplan "github.com/murkotick/catalog-engine/internal/pkg/committer"
)

// Request sets a product's sale. Percentage is on a 0-100 scale; 0 removes the sale.
type Request struct {
	ProductID  string
	Percentage float64
}

type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(repo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: repo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	// 1. Load aggregate
	dto, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		return err
	}
	product, err := dto.ToDomain()
	if err != nil {
		return err
	}

	// 2. Domain call
	if err := product.SetSale(req.Percentage, now); err != nil {
		return err
	}
	if !product.Changes().HasChanges() {
		return nil
	}

	// 3. Build commit plan
	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.UpdateMut(product))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return err
	}

	// 4. Apply plan
	return it.Committer.Apply(ctx, plan)
}
