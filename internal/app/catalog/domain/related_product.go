package domain

import "time"

// RelatedProduct is a directed link: product recommends relatedProduct.
// The reverse direction is a separate link.
type RelatedProduct struct {
	id               string
	productID        string
	relatedProductID string
	position         int64
	createdAt        time.Time
}

// NewRelatedProduct creates a relation and records ProductRelatedEvent on the source product.
func NewRelatedProduct(id string, product *Product, relatedProductID string, position int64, now time.Time) (*RelatedProduct, error) {
	if product.id == relatedProductID {
		return nil, ErrSelfRelation
	}
	rp := &RelatedProduct{
		id:               id,
		productID:        product.id,
		relatedProductID: relatedProductID,
		position:         position,
		createdAt:        now,
	}
	product.record(&ProductRelatedEvent{
		ProductID:        product.id,
		RelatedProductID: relatedProductID,
		Position:         position,
		RelatedAt:        now,
	})
	return rp, nil
}

func (r *RelatedProduct) ID() string {
	return r.id
}

func (r *RelatedProduct) ProductID() string {
	return r.productID
}

func (r *RelatedProduct) RelatedProductID() string {
	return r.relatedProductID
}

func (r *RelatedProduct) Position() int64 {
	return r.position
}

func (r *RelatedProduct) CreatedAt() time.Time {
	return r.createdAt
}
