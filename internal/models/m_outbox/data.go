package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds the insert for one pending outbox event.
// processed_at stays NULL until a relay picks the event up.
func InsertMutation(eventID, eventType, aggregateID, payload, status string, createdAt time.Time) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColEventID, ColEventType, ColAggregateID, ColPayload, ColStatus, ColCreatedAt},
		[]interface{}{eventID, eventType, aggregateID, payload, status, createdAt},
	)
}
