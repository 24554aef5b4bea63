package catalog

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain/services"
	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/get_product"
)

// Request decoding

func stringField(req *structpb.Struct, key string) string {
	v, ok := req.GetFields()[key]
	if !ok {
		return ""
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64)
	default:
		return ""
	}
}

func hasField(req *structpb.Struct, key string) bool {
	v, ok := req.GetFields()[key]
	if !ok {
		return false
	}
	_, isNull := v.GetKind().(*structpb.Value_NullValue)
	return !isNull
}

// intField returns def when key is absent; non-integral numbers are rejected.
func intField(req *structpb.Struct, key string, def int64) (int64, error) {
	if !hasField(req, key) {
		return def, nil
	}
	switch k := req.GetFields()[key].GetKind().(type) {
	case *structpb.Value_NumberValue:
		if k.NumberValue != math.Trunc(k.NumberValue) {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		return int64(k.NumberValue), nil
	case *structpb.Value_StringValue:
		n, err := strconv.ParseInt(k.StringValue, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be an integer", key)
	}
}

func floatField(req *structpb.Struct, key string) (float64, error) {
	if !hasField(req, key) {
		return 0, nil
	}
	switch k := req.GetFields()[key].GetKind().(type) {
	case *structpb.Value_NumberValue:
		return k.NumberValue, nil
	case *structpb.Value_StringValue:
		f, err := strconv.ParseFloat(k.StringValue, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be a number", key)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%s must be a number", key)
	}
}

// moneyField accepts a decimal string or a number. Absent and null give nil.
func moneyField(req *structpb.Struct, key string) (*domain.Money, error) {
	if !hasField(req, key) {
		return nil, nil
	}
	switch k := req.GetFields()[key].GetKind().(type) {
	case *structpb.Value_NumberValue:
		return domain.NewMoneyFromFloat(k.NumberValue), nil
	case *structpb.Value_StringValue:
		m, err := domain.NewMoneyFromDecimal(k.StringValue)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%s must be a decimal string or number", key)
	}
}

func stringList(req *structpb.Struct, key string) ([]string, error) {
	if !hasField(req, key) {
		return nil, nil
	}
	list := req.GetFields()[key].GetListValue()
	if list == nil {
		return nil, fmt.Errorf("%s must be a list", key)
	}
	out := make([]string, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("%s must contain strings", key)
		}
		out = append(out, s.StringValue)
	}
	return out, nil
}

// parameterMap decodes {"Color": ["red", "blue"], ...}.
func parameterMap(req *structpb.Struct, key string) (map[string][]string, error) {
	if !hasField(req, key) {
		return nil, fmt.Errorf("%s is required", key)
	}
	obj := req.GetFields()[key].GetStructValue()
	if obj == nil {
		return nil, fmt.Errorf("%s must be an object", key)
	}
	out := make(map[string][]string, len(obj.GetFields()))
	for name := range obj.GetFields() {
		values, err := stringList(obj, name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out[name] = values
	}
	return out, nil
}

// Response encoding. structpb only accepts []interface{} and map[string]interface{} containers.

func summaryMap(s *dto.ProductSummaryDTO) map[string]interface{} {
	return map[string]interface{}{
		"product_id":    s.ProductID,
		"slug":          s.Slug,
		"name":          s.Name,
		"price":         s.Price,
		"sale_price":    s.SalePrice,
		"is_sale":       s.IsSale,
		"sold_out":      s.SoldOut,
		"position":      s.Position,
		"display_price": s.DisplayPrice,
	}
}

func summaryList(items []*dto.ProductSummaryDTO) []interface{} {
	out := make([]interface{}, 0, len(items))
	for _, s := range items {
		if s != nil {
			out = append(out, summaryMap(s))
		}
	}
	return out
}

func productMap(res *get_product.Result) map[string]interface{} {
	p := res.Product
	out := summaryMap(res.Summary)
	out["active"] = p.Active
	out["brand_id"] = p.BrandID
	out["main_category_id"] = p.MainCategoryID
	out["category_ids"] = stringValues(p.CategoryIDs)
	out["created_at"] = p.CreatedAt.UTC().Format(time.RFC3339)
	out["updated_at"] = p.UpdatedAt.UTC().Format(time.RFC3339)

	variants := make([]interface{}, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, map[string]interface{}{
			"variant_id":         v.VariantID,
			"relation_hash":      v.RelationHash,
			"price":              ratString(v.Price),
			"price_addition":     ratString(v.PriceAddition),
			"sold_out":           v.SoldOut,
			"warehouse_quantity": v.WarehouseQuantity,
		})
	}
	out["variants"] = variants
	return out
}

func feedMap(f *dto.FeedDTO) map[string]interface{} {
	return map[string]interface{}{
		"products":      summaryList(f.Products),
		"count":         f.Count,
		"minimal_price": f.MinimalPrice,
		"maximal_price": f.MaximalPrice,
		"page":          f.Page,
		"limit":         f.Limit,
		"last_page":     f.LastPage,
		"page_numbers":  intValues(f.PageNumbers),
	}
}

func combinationFilterMap(r *services.CombinationFilterResult) map[string]interface{} {
	variants := make([]interface{}, 0, len(r.Variants))
	for _, v := range r.Variants {
		variants = append(variants, map[string]interface{}{
			"variant_id":    v.VariantID,
			"hash":          v.Hash,
			"available":     v.Available,
			"price":         v.Price,
			"regular_price": v.RegularPrice,
			"sale":          v.Sale,
		})
	}

	params := make(map[string]interface{}, len(r.Parameters))
	for name, values := range r.Parameters {
		entries := make([]interface{}, 0, len(values))
		for _, pv := range values {
			entries = append(entries, map[string]interface{}{
				"variant_id": pv.VariantID,
				"hash":       pv.Hash,
				"text":       pv.Text,
				"value":      pv.Value,
			})
		}
		params[name] = entries
	}

	def := make(map[string]interface{}, len(r.Default))
	for k, v := range r.Default {
		def[k] = v
	}

	return map[string]interface{}{
		"price":           r.Price,
		"regular_price":   r.RegularPrice,
		"sale":            r.Sale,
		"variants":        variants,
		"parameters":      params,
		"parameter_names": stringValues(r.ParameterNames),
		"default":         def,
	}
}

func priceMap(p *dto.PriceDTO) map[string]interface{} {
	return map[string]interface{}{
		"currency":  p.Currency,
		"price":     p.Price,
		"is_manual": p.IsManual,
	}
}

func priceListMap(l *dto.PriceListDTO) map[string]interface{} {
	prices := make(map[string]interface{}, len(l.Prices))
	for code, p := range l.Prices {
		prices[code] = priceMap(&p)
	}
	return map[string]interface{}{
		"product_id": l.ProductID,
		"variant_id": l.VariantID,
		"prices":     prices,
	}
}

func stringValues(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func intValues(in []int) []interface{} {
	out := make([]interface{}, len(in))
	for i, n := range in {
		out[i] = n
	}
	return out
}

func ratString(r *big.Rat) interface{} {
	if r == nil {
		return nil
	}
	return r.FloatString(2)
}
