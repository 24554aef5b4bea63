package catalog

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/usecases/update_product"
	"github.com/murkotick/catalog-engine/internal/app/catalog/usecases/update_variant_price"
)

func requireFields(req *structpb.Struct, keys ...string) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	for _, k := range keys {
		if stringField(req, k) == "" {
			return fmt.Errorf("%s is required", k)
		}
	}
	return nil
}

// mapFeedFilter fills the feed defaults: smart ordering, first page, defaultLimit items.
// Range and paging checks are left to the feed handler.
func mapFeedFilter(req *structpb.Struct, defaultLimit int) (domain.FeedFilter, error) {
	if req == nil {
		return domain.FeedFilter{}, fmt.Errorf("request is required")
	}

	filter := domain.FeedFilter{
		MainCategoryID: stringField(req, "main_category_id"),
		Ordering:       domain.OrderingSmart,
	}
	if o := stringField(req, "ordering"); o != "" {
		filter.Ordering = domain.FeedOrdering(o)
	}

	var err error
	if filter.BrandIDs, err = stringList(req, "brand_ids"); err != nil {
		return domain.FeedFilter{}, err
	}
	if filter.PriceFrom, err = moneyField(req, "price_from"); err != nil {
		return domain.FeedFilter{}, err
	}
	if filter.PriceTo, err = moneyField(req, "price_to"); err != nil {
		return domain.FeedFilter{}, err
	}

	limit, err := intField(req, "limit", int64(defaultLimit))
	if err != nil {
		return domain.FeedFilter{}, err
	}
	page, err := intField(req, "page", 1)
	if err != nil {
		return domain.FeedFilter{}, err
	}
	filter.Limit = int(limit)
	filter.Page = int(page)
	return filter, nil
}

func mapUpdateProductRequest(req *structpb.Struct) (update_product.Request, error) {
	if err := requireFields(req, "product_id"); err != nil {
		return update_product.Request{}, err
	}
	out := update_product.Request{ProductID: stringField(req, "product_id")}
	if hasField(req, "position") {
		pos, err := intField(req, "position", 0)
		if err != nil {
			return update_product.Request{}, err
		}
		out.Position = &pos
	}
	if out.Position == nil {
		return update_product.Request{}, fmt.Errorf("at least one field must be provided")
	}
	return out, nil
}

// mapUpdateVariantPriceRequest treats absent and null prices alike: the variant
// inherits the product price and carries no addition.
func mapUpdateVariantPriceRequest(req *structpb.Struct) (update_variant_price.Request, error) {
	if err := requireFields(req, "product_id", "variant_id"); err != nil {
		return update_variant_price.Request{}, err
	}
	price, err := moneyField(req, "price")
	if err != nil {
		return update_variant_price.Request{}, err
	}
	addition, err := moneyField(req, "price_addition")
	if err != nil {
		return update_variant_price.Request{}, err
	}
	return update_variant_price.Request{
		ProductID:     stringField(req, "product_id"),
		VariantID:     stringField(req, "variant_id"),
		Price:         price,
		PriceAddition: addition,
	}, nil
}
