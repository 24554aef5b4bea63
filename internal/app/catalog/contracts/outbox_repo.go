package contracts

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Outbox statuses.
const (
	OutboxStatusPending = "pending"
)

// OutboxRepo returns the mutation that records an event in the outbox table.
type OutboxRepo interface {
	InsertMut(e *OutboxEvent) *spanner.Mutation
}

// OutboxEvent is a domain event enriched for persistence.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}
