package catalog

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/catalog_feed"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/combination_filter"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/get_product"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/price_list"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/related_products"
	"github.com/murkotick/catalog-engine/internal/app/catalog/usecases/generate_variants"
	"github.com/murkotick/catalog-engine/internal/app/catalog/usecases/relate_products"
	"github.com/murkotick/catalog-engine/internal/app/catalog/usecases/set_product_sale"
	"github.com/murkotick/catalog-engine/internal/app/catalog/usecases/update_product"
	"github.com/murkotick/catalog-engine/internal/app/catalog/usecases/update_variant_price"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	SetSale          *set_product_sale.Interactor
	Update           *update_product.Interactor
	UpdateVariant    *update_variant_price.Interactor
	Relate           *relate_products.Interactor
	GenerateVariants *generate_variants.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Get               *get_product.Handler
	Feed              *catalog_feed.Handler
	CombinationFilter *combination_filter.Handler
	Prices            *price_list.Handler
	Related           *related_products.Handler
}

// Handler is a thin gRPC transport adapter.
// It validates input, maps Struct messages <-> application DTOs and delegates to CQRS handlers.
type Handler struct {
	commands         Commands
	queries          Queries
	defaultFeedLimit int
}

var _ CatalogServiceServer = (*Handler)(nil)

func NewHandler(cmd Commands, qry Queries, defaultFeedLimit int) *Handler {
	if defaultFeedLimit <= 0 {
		defaultFeedLimit = 24
	}
	return &Handler{commands: cmd, queries: qry, defaultFeedLimit: defaultFeedLimit}
}

func (h *Handler) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, "product_id"); err != nil {
		return nil, invalid(err)
	}

	res, err := h.queries.Get.Execute(ctx, stringField(req, "product_id"))
	if err != nil {
		return nil, mapError(err)
	}
	return reply(map[string]interface{}{
		"product":       productMap(res),
		"variant_count": res.VariantCount,
	})
}

func (h *Handler) GetCatalogFeed(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	filter, err := mapFeedFilter(req, h.defaultFeedLimit)
	if err != nil {
		return nil, invalid(err)
	}

	feed, err := h.queries.Feed.Execute(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}
	return reply(feedMap(feed))
}

func (h *Handler) GetCombinationFilter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, "product_id"); err != nil {
		return nil, invalid(err)
	}

	res, err := h.queries.CombinationFilter.Execute(ctx, stringField(req, "product_id"), stringField(req, "variant_id"))
	if err != nil {
		return nil, mapError(err)
	}
	return reply(combinationFilterMap(res))
}

func (h *Handler) GetPrice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, "product_id"); err != nil {
		return nil, invalid(err)
	}

	price, err := h.queries.Prices.GetPrice(ctx,
		stringField(req, "product_id"),
		stringField(req, "variant_id"),
		stringField(req, "currency"),
	)
	if err != nil {
		return nil, mapError(err)
	}
	return reply(priceMap(price))
}

func (h *Handler) GetPriceList(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, "product_id"); err != nil {
		return nil, invalid(err)
	}

	list, err := h.queries.Prices.GetPriceList(ctx, stringField(req, "product_id"), stringField(req, "variant_id"))
	if err != nil {
		return nil, mapError(err)
	}
	return reply(priceListMap(list))
}

func (h *Handler) GetRelatedProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, "product_id"); err != nil {
		return nil, invalid(err)
	}
	limit, err := intField(req, "limit", 0)
	if err != nil {
		return nil, invalid(err)
	}

	items, err := h.queries.Related.ByProduct(ctx, stringField(req, "product_id"), int(limit))
	if err != nil {
		return nil, mapError(err)
	}
	return reply(map[string]interface{}{"products": summaryList(items)})
}

func (h *Handler) GetRelatedForCollection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ids, err := stringList(req, "product_ids")
	if err != nil {
		return nil, invalid(err)
	}
	if len(ids) == 0 {
		return nil, status.Error(codes.InvalidArgument, "product_ids is required")
	}
	limit, err := intField(req, "limit", 0)
	if err != nil {
		return nil, invalid(err)
	}

	items, err := h.queries.Related.ByCollection(ctx, ids, int(limit))
	if err != nil {
		return nil, mapError(err)
	}
	return reply(map[string]interface{}{"products": summaryList(items)})
}

func (h *Handler) SetProductSale(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, "product_id"); err != nil {
		return nil, invalid(err)
	}
	pct, err := floatField(req, "percentage")
	if err != nil {
		return nil, invalid(err)
	}

	err = h.commands.SetSale.Execute(ctx, set_product_sale.Request{
		ProductID:  stringField(req, "product_id"),
		Percentage: pct,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return reply(map[string]interface{}{})
}

func (h *Handler) UpdateProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	appReq, err := mapUpdateProductRequest(req)
	if err != nil {
		return nil, invalid(err)
	}

	if err := h.commands.Update.Execute(ctx, appReq); err != nil {
		return nil, mapError(err)
	}
	return reply(map[string]interface{}{})
}

func (h *Handler) UpdateVariantPrice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	appReq, err := mapUpdateVariantPriceRequest(req)
	if err != nil {
		return nil, invalid(err)
	}

	resp, err := h.commands.UpdateVariant.Execute(ctx, appReq)
	if err != nil {
		return nil, mapError(err)
	}
	return reply(map[string]interface{}{"changed": resp.Changed})
}

func (h *Handler) RelateProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, "product_id", "related_product_id"); err != nil {
		return nil, invalid(err)
	}
	position, err := intField(req, "position", 0)
	if err != nil {
		return nil, invalid(err)
	}

	id, err := h.commands.Relate.Execute(ctx, relate_products.Request{
		ProductID:        stringField(req, "product_id"),
		RelatedProductID: stringField(req, "related_product_id"),
		Position:         position,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return reply(map[string]interface{}{"relation_id": id})
}

func (h *Handler) GenerateVariants(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, "product_id"); err != nil {
		return nil, invalid(err)
	}
	params, err := parameterMap(req, "parameters")
	if err != nil {
		return nil, invalid(err)
	}

	resp, err := h.commands.GenerateVariants.Execute(ctx, generate_variants.Request{
		ProductID:  stringField(req, "product_id"),
		Parameters: params,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return reply(map[string]interface{}{
		"variant_ids": stringValues(resp.VariantIDs),
		"skipped":     resp.Skipped,
	})
}

func reply(m map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func invalid(err error) error {
	return status.Error(codes.InvalidArgument, err.Error())
}

