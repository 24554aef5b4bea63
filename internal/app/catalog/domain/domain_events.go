package domain

import "time"

// DomainEvent is a marker interface for all domain events.
// Domain events represent facts about things that have happened in the domain.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ProductSaleChangedEvent is raised when a product's sale percentage is set or cleared.
// A nil percentage means the sale was removed.
type ProductSaleChangedEvent struct {
	ProductID  string
	OldPercent *float64
	NewPercent *float64
	ChangedAt  time.Time
}

func (e *ProductSaleChangedEvent) EventType() string {
	return "product.sale_changed"
}

func (e *ProductSaleChangedEvent) AggregateID() string {
	return e.ProductID
}

func (e *ProductSaleChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}

// VariantCreatedEvent is raised for every variant generated from a parameter combination.
type VariantCreatedEvent struct {
	ProductID    string
	VariantID    string
	RelationHash string
	CreatedAt    time.Time
}

func (e *VariantCreatedEvent) EventType() string {
	return "variant.created"
}

func (e *VariantCreatedEvent) AggregateID() string {
	return e.ProductID
}

func (e *VariantCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// VariantPriceChangedEvent is raised when a variant's override or addition changes.
// Nil fields mean "inherit product price" and "no addition".
type VariantPriceChangedEvent struct {
	ProductID     string
	VariantID     string
	Price         *Money
	PriceAddition *Money
	ChangedAt     time.Time
}

func (e *VariantPriceChangedEvent) EventType() string {
	return "variant.price_changed"
}

func (e *VariantPriceChangedEvent) AggregateID() string {
	return e.ProductID
}

func (e *VariantPriceChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}

// ProductRelatedEvent is raised when a directed product relation is created.
type ProductRelatedEvent struct {
	ProductID        string
	RelatedProductID string
	Position         int64
	RelatedAt        time.Time
}

func (e *ProductRelatedEvent) EventType() string {
	return "product.related"
}

func (e *ProductRelatedEvent) AggregateID() string {
	return e.ProductID
}

func (e *ProductRelatedEvent) OccurredAt() time.Time {
	return e.RelatedAt
}
