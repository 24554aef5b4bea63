package generate_variants

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	contracts "github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	shared "github.com/murkotick/catalog-engine/internal/app/catalog/usecases/shared"
	"github.com/murkotick/catalog-engine/internal/logging"
	"github.com/murkotick/catalog-engine/internal/metrics"
	"github.com/murkotick/catalog-engine/internal/pkg/clock"
	"github.com/murkotick/catalog-engine/internal/pkg/combination"
	commitplan "github.com/murkotick/catalog-engine/internal/pkg/committer"
)

// DefaultMaxCombinations caps one generation request when no limit is configured.
const DefaultMaxCombinations = 1000

// Request maps parameter names to the values to combine.
type Request struct {
	ProductID  string
	Parameters map[string][]string
}

// Response lists the created variant ids and how many combinations already existed.
type Response struct {
	VariantIDs []string
	Skipped    int
}

type Interactor struct {
	VariantRepo     contracts.VariantRepo
	OutboxRepo      contracts.OutboxRepo
	Committer       contracts.Committer
	ReadModel       contracts.ReadModel
	Generator       combination.Generator
	Clock           clock.Clock
	MaxCombinations int
}

func NewInteractor(repo contracts.VariantRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, gen combination.Generator, clk clock.Clock, maxCombinations int) *Interactor {
	if maxCombinations <= 0 {
		maxCombinations = DefaultMaxCombinations
	}
	return &Interactor{
		VariantRepo:     repo,
		OutboxRepo:      outboxRepo,
		Committer:       committer,
		ReadModel:       readModel,
		Generator:       gen,
		Clock:           clk,
		MaxCombinations: maxCombinations,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*Response, error) {
	now := it.Clock.Now()

	count := it.Generator.Count(req.Parameters)
	if count > it.MaxCombinations {
		return nil, fmt.Errorf("%w: %d combinations, limit %d", domain.ErrTooManyCombinations, count, it.MaxCombinations)
	}

	dto, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	product, err := dto.ToDomain()
	if err != nil {
		return nil, err
	}

	// Loaded once for the whole request.
	names, err := it.ReadModel.ColorNames(ctx)
	if err != nil {
		return nil, err
	}
	colors := domain.NewColorSet(names...)

	resp := &Response{VariantIDs: make([]string, 0, count)}
	plan := commitplan.NewPlan()
	for params := range it.Generator.Generate(req.Parameters) {
		if err := domain.ValidateParameters(params, colors); err != nil {
			return nil, err
		}
		if product.HasRelationHash(domain.SerializeRelationHash(params)) {
			resp.Skipped++
			continue
		}
		variant, err := domain.NewVariant(uuid.New().String(), product, params, now)
		if err != nil {
			return nil, err
		}
		plan.Add(it.VariantRepo.InsertMut(variant))
		resp.VariantIDs = append(resp.VariantIDs, variant.ID())
	}

	if len(resp.VariantIDs) == 0 {
		return resp, nil
	}
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return nil, err
	}
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, err
	}

	metrics.VariantsGenerated.Add(float64(len(resp.VariantIDs)))
	logging.Ctx(ctx).Info().
		Str("product_id", product.ID()).
		Int("created", len(resp.VariantIDs)).
		Int("skipped", resp.Skipped).
		Msg("variants generated")
	return resp, nil
}
