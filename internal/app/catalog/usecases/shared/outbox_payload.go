package shared

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	commitplan "github.com/murkotick/catalog-engine/internal/pkg/committer"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload for the outbox.
// Money is written as a decimal string; absent prices and percentages are null.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	var payload map[string]interface{}
	switch e := ev.(type) {
	case *domain.ProductSaleChangedEvent:
		payload = map[string]interface{}{
			"product_id":  e.ProductID,
			"old_percent": e.OldPercent,
			"new_percent": e.NewPercent,
			"changed_at":  e.ChangedAt,
		}

	case *domain.VariantCreatedEvent:
		payload = map[string]interface{}{
			"product_id":    e.ProductID,
			"variant_id":    e.VariantID,
			"relation_hash": e.RelationHash,
			"created_at":    e.CreatedAt,
		}

	case *domain.VariantPriceChangedEvent:
		payload = map[string]interface{}{
			"product_id":     e.ProductID,
			"variant_id":     e.VariantID,
			"price":          moneyOrNil(e.Price),
			"price_addition": moneyOrNil(e.PriceAddition),
			"changed_at":     e.ChangedAt,
		}

	case *domain.ProductRelatedEvent:
		payload = map[string]interface{}{
			"product_id":         e.ProductID,
			"related_product_id": e.RelatedProductID,
			"position":           e.Position,
			"related_at":         e.RelatedAt,
		}

	default:
		b, err := json.Marshal(ev)
		if err != nil {
			return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
		}
		return string(b), nil
	}

	payload["event_type"] = ev.EventType()
	payload["occurred_at"] = ev.OccurredAt()
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %s: %w", ev.EventType(), err)
	}
	return string(b), nil
}

// AddOutboxEvents appends one pending outbox row per event to plan.
func AddOutboxEvents(plan *commitplan.Plan, outbox contracts.OutboxRepo, events []domain.DomainEvent, now time.Time) error {
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			return err
		}
		plan.Add(outbox.InsertMut(&contracts.OutboxEvent{
			EventID:      uuid.New().String(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			Status:       contracts.OutboxStatusPending,
			CreatedAtUTC: now,
		}))
	}
	return nil
}

func moneyOrNil(m *domain.Money) interface{} {
	if m == nil {
		return nil
	}
	return m.String()
}
