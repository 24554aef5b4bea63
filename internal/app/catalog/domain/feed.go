package domain

// FeedOrdering selects the sort applied to feed candidates.
type FeedOrdering string

const (
	// OrderingSmart sorts by position, highest first.
	OrderingSmart FeedOrdering = "smart"
	// OrderingCheapest sorts by price ascending.
	OrderingCheapest FeedOrdering = "cheapest"
	// OrderingMostExpensive sorts by price descending.
	OrderingMostExpensive FeedOrdering = "mostExpensive"
)

// FeedFilter narrows the catalog feed.
// MainCategoryID is expanded to the category and all of its descendants.
type FeedFilter struct {
	MainCategoryID string       `validate:"omitempty,max=64"`
	BrandIDs       []string     `validate:"omitempty,dive,required,max=64"`
	PriceFrom      *Money       `validate:"-"`
	PriceTo        *Money       `validate:"-"`
	Ordering       FeedOrdering `validate:"required,oneof=smart cheapest mostExpensive"`
	Limit          int          `validate:"required,min=1"`
	Page           int          `validate:"required,min=1"`
}

// FeedCandidate is the projection selected before products are hydrated.
type FeedCandidate struct {
	ProductID string
	Price     *Money
	Position  int64
}

// FeedStatistic describes the candidate set behind a feed page.
type FeedStatistic struct {
	Count        int
	MinimalPrice *Money
	MaximalPrice *Money
}
