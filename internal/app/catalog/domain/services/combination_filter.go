package services

import (
	"maps"
	"slices"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
)

// ParameterValue is one selectable value of a variant parameter, tied to the
// first variant it was seen on.
type ParameterValue struct {
	VariantID string
	Hash      string
	Text      string
	Value     string
}

// VariantOption is one entry of the flat variant list.
type VariantOption struct {
	VariantID    string
	Hash         string
	Available    bool
	Price        int64
	RegularPrice int64
	Sale         bool
}

// CombinationFilterResult drives a storefront variant picker.
type CombinationFilterResult struct {
	Price          int64
	RegularPrice   int64
	Sale           bool
	Variants       []VariantOption
	Parameters     map[string][]ParameterValue
	ParameterNames []string // first-seen order of Parameters keys
	Default        map[string]string
}

// CombinationFilter builds selectable parameter values and the default selection
// from a product's variants.
type CombinationFilter struct {
	pricer *VariantPricer
}

// NewCombinationFilter creates a CombinationFilter.
func NewCombinationFilter(pricer *VariantPricer) *CombinationFilter {
	return &CombinationFilter{pricer: pricer}
}

// Build computes the filter for product. With a non-empty variantID the selection
// and prices follow that variant; ErrVariantNotFound if the product has no such variant.
func (cf *CombinationFilter) Build(product *domain.Product, variantID string) (*CombinationFilterResult, error) {
	result := &CombinationFilterResult{
		Price:        cf.pricer.ProductPrice(product, true),
		RegularPrice: cf.pricer.ProductPrice(product, false),
		Sale:         product.IsSale(),
		Variants:     make([]VariantOption, 0, len(product.Variants())),
		Parameters:   make(map[string][]ParameterValue),
	}

	seen := make(map[string]map[string]struct{})
	var defaultGlobally, defaultAvailable map[string]string

	for _, v := range product.Variants() {
		params, err := v.Parameters()
		if err != nil {
			return nil, err
		}

		result.Variants = append(result.Variants, VariantOption{
			VariantID:    v.ID(),
			Hash:         v.RelationHash(),
			Available:    !v.IsSoldOut(),
			Price:        cf.pricer.Price(v, true),
			RegularPrice: cf.pricer.Price(v, false),
			Sale:         product.IsSale(),
		})

		if len(params) == 0 {
			continue
		}
		if defaultGlobally == nil {
			defaultGlobally = params
		}
		if defaultAvailable == nil && !v.IsSoldOut() {
			defaultAvailable = params
		}

		for _, name := range slices.Sorted(maps.Keys(params)) {
			value := params[name]
			values, ok := seen[name]
			if !ok {
				values = make(map[string]struct{})
				seen[name] = values
				result.ParameterNames = append(result.ParameterNames, name)
			}
			if _, dup := values[value]; dup {
				continue
			}
			values[value] = struct{}{}
			result.Parameters[name] = append(result.Parameters[name], ParameterValue{
				VariantID: v.ID(),
				Hash:      v.RelationHash(),
				Text:      value,
				Value:     value,
			})
		}
	}

	if variantID != "" {
		selected, err := product.Variant(variantID)
		if err != nil {
			return nil, err
		}
		params, err := selected.Parameters()
		if err != nil {
			return nil, err
		}
		defaultGlobally = params
		defaultAvailable = params
		result.Price = cf.pricer.Price(selected, true)
		result.RegularPrice = cf.pricer.Price(selected, false)
	}

	result.Default = defaultAvailable
	if len(result.Default) == 0 {
		result.Default = defaultGlobally
	}
	if result.Default == nil {
		result.Default = map[string]string{}
	}
	return result, nil
}
