package relate_products

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	contracts "github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	shared "github.com/murkotick/catalog-engine/internal/app/catalog/usecases/shared"
	"github.com/murkotick/catalog-engine/internal/pkg/clock"
	commitplan "github.com/murkotick/catalog-engine/internal/pkg/committer"
)

// Request links ProductID to RelatedProductID. The link is one-directional.
type Request struct {
	ProductID        string
	RelatedProductID string
	Position         int64
}

type Interactor struct {
	RelationRepo contracts.RelationRepo
	OutboxRepo   contracts.OutboxRepo
	Committer    contracts.Committer
	ReadModel    contracts.ReadModel
	Related      contracts.RelatedReader
	Clock        clock.Clock
}

func NewInteractor(repo contracts.RelationRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, related contracts.RelatedReader, clk clock.Clock) *Interactor {
	return &Interactor{
		RelationRepo: repo,
		OutboxRepo:   outboxRepo,
		Committer:    committer,
		ReadModel:    readModel,
		Related:      related,
		Clock:        clk,
	}
}

// Execute returns the new relation id.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	source, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		return "", err
	}
	product, err := source.ToDomain()
	if err != nil {
		return "", err
	}

	relation, err := domain.NewRelatedProduct(uuid.New().String(), product, req.RelatedProductID, req.Position, now)
	if err != nil {
		return "", err
	}

	if _, err := it.ReadModel.GetProduct(ctx, req.RelatedProductID); err != nil {
		return "", err
	}
	exists, err := it.Related.RelationExists(ctx, req.ProductID, req.RelatedProductID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("%w: %s -> %s", domain.ErrRelationAlreadyExists, req.ProductID, req.RelatedProductID)
	}

	plan := commitplan.NewPlan()
	plan.Add(it.RelationRepo.InsertMut(relation))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return "", err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		if errors.Is(err, commitplan.ErrConflict) {
			return "", fmt.Errorf("%w: %s -> %s", domain.ErrRelationAlreadyExists, req.ProductID, req.RelatedProductID)
		}
		return "", err
	}
	return relation.ID(), nil
}
