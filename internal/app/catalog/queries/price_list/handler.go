package price_list

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain/services"
	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
	"github.com/murkotick/catalog-engine/internal/metrics"
)

// Handler resolves product and variant prices per currency. Currencies may be
// nil; any path that needs the rate table then fails with ErrExchangeRateUnavailable.
type Handler struct {
	readModel  contracts.ReadModel
	manual     contracts.ManualPriceReader
	currencies contracts.Currencies
	pricer     *services.VariantPricer
}

func NewHandler(r contracts.ReadModel, manual contracts.ManualPriceReader, currencies contracts.Currencies) *Handler {
	return &Handler{
		readModel:  r,
		manual:     manual,
		currencies: currencies,
		pricer:     services.NewVariantPricer(),
	}
}

// GetPrice resolves one currency, the main currency when currency is empty.
// A pinned row wins, for the main currency too; otherwise the main currency
// gets the stored price and any other currency a conversion.
func (h *Handler) GetPrice(ctx context.Context, productID, variantID, currency string) (*dto.PriceDTO, error) {
	base, err := h.basePrice(ctx, productID, variantID)
	if err != nil {
		return nil, err
	}

	if h.currencies == nil {
		if currency == "" {
			return nil, fmt.Errorf("%w: no main currency without a rate table", domain.ErrExchangeRateUnavailable)
		}
		pinned, err := h.manualPrice(ctx, productID, variantID, currency)
		if err != nil {
			return nil, err
		}
		if pinned != nil {
			return pinned, nil
		}
		return nil, fmt.Errorf("%w: cannot convert to %s", domain.ErrExchangeRateUnavailable, currency)
	}

	main, err := h.currencies.MainCurrency(ctx)
	if err != nil {
		return nil, err
	}
	if currency == "" {
		currency = main
	}

	pinned, err := h.manualPrice(ctx, productID, variantID, currency)
	if err != nil {
		return nil, err
	}
	if pinned != nil {
		return pinned, nil
	}
	return h.fromBase(ctx, base, main, currency)
}

// GetPriceList resolves every configured currency.
func (h *Handler) GetPriceList(ctx context.Context, productID, variantID string) (*dto.PriceListDTO, error) {
	if h.currencies == nil {
		return nil, fmt.Errorf("%w: no rate table", domain.ErrExchangeRateUnavailable)
	}
	base, err := h.basePrice(ctx, productID, variantID)
	if err != nil {
		return nil, err
	}
	main, err := h.currencies.MainCurrency(ctx)
	if err != nil {
		return nil, err
	}
	codes, err := h.currencies.CurrencyCodes(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.PriceListDTO{
		ProductID: productID,
		VariantID: variantID,
		Prices:    make(map[string]dto.PriceDTO, len(codes)),
	}
	for _, code := range codes {
		price, err := h.resolve(ctx, productID, variantID, base, main, code)
		if err != nil {
			return nil, err
		}
		out.Prices[code] = *price
	}
	return out, nil
}

// resolve is the price list rule: the main currency always reports the stored
// price, other currencies prefer a pinned row.
func (h *Handler) resolve(ctx context.Context, productID, variantID string, base *domain.Money, main, currency string) (*dto.PriceDTO, error) {
	if strings.EqualFold(currency, main) {
		return h.fromBase(ctx, base, main, currency)
	}

	pinned, err := h.manualPrice(ctx, productID, variantID, currency)
	if err != nil {
		return nil, err
	}
	if pinned != nil {
		return pinned, nil
	}
	return h.fromBase(ctx, base, main, currency)
}

// fromBase reports base as is for the main currency and converts it otherwise.
func (h *Handler) fromBase(ctx context.Context, base *domain.Money, main, currency string) (*dto.PriceDTO, error) {
	if strings.EqualFold(currency, main) {
		metrics.PriceResolutions.WithLabelValues("main").Inc()
		return &dto.PriceDTO{Currency: currency, Price: base.String(), IsManual: true}, nil
	}

	converted, err := h.currencies.Convert(ctx, base, main, currency)
	if err != nil {
		return nil, err
	}
	metrics.PriceResolutions.WithLabelValues("converted").Inc()
	return &dto.PriceDTO{Currency: currency, Price: converted.String(), IsManual: false}, nil
}

// manualPrice returns nil, nil when nothing is pinned.
func (h *Handler) manualPrice(ctx context.Context, productID, variantID, currency string) (*dto.PriceDTO, error) {
	if h.manual == nil {
		return nil, nil
	}
	price, err := h.manual.ManualPrice(ctx, productID, variantID, currency)
	if errors.Is(err, domain.ErrManualPriceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	metrics.PriceResolutions.WithLabelValues("manual").Inc()
	return &dto.PriceDTO{Currency: currency, Price: price.String(), IsManual: true}, nil
}

// basePrice is the stored main-currency price: the product price, or the
// variant's regular price when variantID is set.
func (h *Handler) basePrice(ctx context.Context, productID, variantID string) (*domain.Money, error) {
	p, err := h.readModel.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	product, err := p.ToDomain()
	if err != nil {
		return nil, err
	}
	if variantID == "" {
		return product.Price(), nil
	}
	v, err := product.Variant(variantID)
	if err != nil {
		return nil, err
	}
	return domain.NewMoneyFromInt(h.pricer.Price(v, false)), nil
}
