package price_list

import (
	"context"
	"errors"
	"fmt"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/pkg/exchange"
)

// ExchangeCurrencies adapts exchange.Converter to domain money and domain errors.
type ExchangeCurrencies struct {
	converter    *exchange.Converter
	fallbackMain string
}

// NewExchangeCurrencies wraps converter. fallbackMain is used when the rate
// table flags no currency as main; empty means no fallback.
func NewExchangeCurrencies(converter *exchange.Converter, fallbackMain string) *ExchangeCurrencies {
	return &ExchangeCurrencies{converter: converter, fallbackMain: fallbackMain}
}

func (c *ExchangeCurrencies) MainCurrency(ctx context.Context) (string, error) {
	code, err := c.converter.MainCurrency(ctx)
	if errors.Is(err, exchange.ErrNoMainCurrency) && c.fallbackMain != "" {
		return c.fallbackMain, nil
	}
	if err != nil {
		return "", translate(err)
	}
	return code, nil
}

func (c *ExchangeCurrencies) CurrencyCodes(ctx context.Context) ([]string, error) {
	codes, err := c.converter.CurrencyCodes(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return codes, nil
}

func (c *ExchangeCurrencies) Convert(ctx context.Context, amount *domain.Money, from, to string) (*domain.Money, error) {
	out, err := c.converter.Convert(ctx, amount.Rat(), from, to)
	if err != nil {
		return nil, translate(err)
	}
	return domain.NewMoneyFromRat(out), nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, exchange.ErrUnknownCurrency):
		return fmt.Errorf("%w: %v", domain.ErrUnknownCurrency, err)
	case errors.Is(err, exchange.ErrRatesUnavailable), errors.Is(err, exchange.ErrNoMainCurrency):
		return fmt.Errorf("%w: %v", domain.ErrExchangeRateUnavailable, err)
	default:
		return err
	}
}
