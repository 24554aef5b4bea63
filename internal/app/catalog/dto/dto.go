package dto

import (
	"math/big"
	"time"
)

// ProductDTO is a product row as read from storage. Variants are only
// populated by queries that need them.
type ProductDTO struct {
	ProductID      string
	Slug           string
	Name           string
	Price          *big.Rat
	SalePercentage *big.Rat // nil when the product is not on sale
	Position       int64
	Active         bool
	SoldOut        bool
	BrandID        string
	MainCategoryID string
	CategoryIDs    []string
	Variants       []*VariantDTO
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// VariantDTO is a variant row. Nil prices mean "inherit" and "no addition".
type VariantDTO struct {
	VariantID         string
	RelationHash      string
	Price             *big.Rat
	PriceAddition     *big.Rat
	SoldOut           bool
	WarehouseQuantity int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ProductSummaryDTO is the compact shape returned by feed and recommendation queries.
// Prices are decimal strings.
type ProductSummaryDTO struct {
	ProductID    string
	Slug         string
	Name         string
	Price        string
	SalePrice    string
	IsSale       bool
	SoldOut      bool
	Position     int64
	DisplayPrice int64 // sale price rounded to a retail ending
}

// FeedDTO is one catalog feed page.
type FeedDTO struct {
	Products     []*ProductSummaryDTO
	Count        int
	MinimalPrice string
	MaximalPrice string
	Page         int
	Limit        int
	LastPage     int
	PageNumbers  []int
}

// PriceDTO is the price of a product or variant in one currency.
type PriceDTO struct {
	Currency string
	Price    string
	IsManual bool
}

// PriceListDTO maps currency codes to prices.
type PriceListDTO struct {
	ProductID string
	VariantID string
	Prices    map[string]PriceDTO
}
