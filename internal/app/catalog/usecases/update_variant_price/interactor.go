package update_variant_price

import (
	"context"

	contracts "github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	shared "github.com/murkotick/catalog-engine/internal/app/catalog/usecases/shared"
	"github.com/murkotick/catalog-engine/internal/pkg/clock"
	commitplan "github.com/murkotick/catalog-engine/internal/pkg/committer"
)

// Request replaces both price fields of a variant. A nil Price inherits the
// product price; a nil PriceAddition removes the surcharge.
type Request struct {
	ProductID     string
	VariantID     string
	Price         *domain.Money
	PriceAddition *domain.Money
}

// Response reports whether anything was written.
type Response struct {
	Changed bool
}

type Interactor struct {
	VariantRepo contracts.VariantRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(repo contracts.VariantRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		VariantRepo: repo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*Response, error) {
	now := it.Clock.Now()

	dto, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	product, err := dto.ToDomain()
	if err != nil {
		return nil, err
	}
	variant, err := product.Variant(req.VariantID)
	if err != nil {
		return nil, err
	}

	priceChanged, err := variant.SetPrice(req.Price, now)
	if err != nil {
		return nil, err
	}
	additionChanged := variant.SetPriceAddition(req.PriceAddition, now)
	if !priceChanged && !additionChanged {
		return &Response{Changed: false}, nil
	}
	variant.RecordPriceChange(now)

	plan := commitplan.NewPlan()
	plan.Add(it.VariantRepo.UpdateMut(variant))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return nil, err
	}
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, err
	}
	return &Response{Changed: true}, nil
}
