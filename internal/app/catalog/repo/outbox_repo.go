package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/models/m_outbox"
)

// OutboxRepo is the Spanner implementation of the transactional outbox repository.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}
	status := e.Status
	if status == "" {
		status = contracts.OutboxStatusPending
	}
	return m_outbox.InsertMutation(e.EventID, e.EventType, e.AggregateID, e.PayloadJSON, status, e.CreatedAtUTC.UTC())
}
