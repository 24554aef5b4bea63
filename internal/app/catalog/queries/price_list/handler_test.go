package price_list

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
	"github.com/murkotick/catalog-engine/internal/pkg/exchange"
)

type fakeReadModel struct {
	product *dto.ProductDTO
}

func (f *fakeReadModel) GetProduct(_ context.Context, id string) (*dto.ProductDTO, error) {
	if f.product == nil || f.product.ProductID != id {
		return nil, domain.ErrProductNotFound
	}
	return f.product, nil
}

func (f *fakeReadModel) ListProducts(context.Context, []string) ([]*dto.ProductDTO, error) {
	return nil, nil
}

func (f *fakeReadModel) ColorNames(context.Context) ([]string, error) {
	return nil, nil
}

type manualKey struct {
	product, variant, currency string
}

type fakeManual map[manualKey]*domain.Money

func (f fakeManual) ManualPrice(_ context.Context, productID, variantID, currency string) (*domain.Money, error) {
	if m, ok := f[manualKey{productID, variantID, currency}]; ok {
		return m, nil
	}
	return nil, domain.ErrManualPriceNotFound
}

type rateSource struct {
	rates []exchange.Currency
	err   error
}

func (s *rateSource) LoadRates(context.Context) ([]exchange.Currency, error) {
	return s.rates, s.err
}

func rates() []exchange.Currency {
	return []exchange.Currency{
		{Code: "CZK", Rate: big.NewRat(1, 1), Main: true},
		{Code: "EUR", Rate: big.NewRat(1, 25)},
		{Code: "USD", Rate: big.NewRat(1, 20)},
	}
}

func currencies(t *testing.T, src *rateSource) *ExchangeCurrencies {
	return NewExchangeCurrencies(exchange.NewConverter(src, t.Name(), exchange.DefaultBreakerConfig()), "")
}

func lamp() *dto.ProductDTO {
	return &dto.ProductDTO{
		ProductID:      "lamp",
		Slug:           "lamp",
		Name:           "Lamp",
		Price:          big.NewRat(500, 1),
		SalePercentage: big.NewRat(10, 1),
		Active:         true,
		Variants: []*dto.VariantDTO{
			{VariantID: "big", RelationHash: "Size=L", PriceAddition: big.NewRat(101, 2)},
		},
	}
}

func TestGetPriceList_MainManualAndConverted(t *testing.T) {
	manual := fakeManual{{"lamp", "", "USD"}: domain.NewMoneyFromInt(19)}
	h := NewHandler(&fakeReadModel{product: lamp()}, manual, currencies(t, &rateSource{rates: rates()}))

	list, err := h.GetPriceList(context.Background(), "lamp", "")
	require.NoError(t, err)
	require.Len(t, list.Prices, 3)

	assert.Equal(t, dto.PriceDTO{Currency: "CZK", Price: "500.00", IsManual: true}, list.Prices["CZK"])
	assert.Equal(t, dto.PriceDTO{Currency: "EUR", Price: "20.00", IsManual: false}, list.Prices["EUR"])
	assert.Equal(t, dto.PriceDTO{Currency: "USD", Price: "19.00", IsManual: true}, list.Prices["USD"])
}

func TestGetPrice_VariantUsesRegularPrice(t *testing.T) {
	h := NewHandler(&fakeReadModel{product: lamp()}, fakeManual{}, currencies(t, &rateSource{rates: rates()}))

	// 500 + 50.5 -> 551, sale is ignored
	price, err := h.GetPrice(context.Background(), "lamp", "big", "")
	require.NoError(t, err)
	assert.Equal(t, "CZK", price.Currency)
	assert.Equal(t, "551.00", price.Price)
	assert.True(t, price.IsManual)

	_, err = h.GetPrice(context.Background(), "lamp", "small", "")
	assert.ErrorIs(t, err, domain.ErrVariantNotFound)
}

func TestGetPrice_PinnedMainCurrencyRow(t *testing.T) {
	manual := fakeManual{{"lamp", "", "CZK"}: domain.NewMoneyFromInt(480)}
	h := NewHandler(&fakeReadModel{product: lamp()}, manual, currencies(t, &rateSource{rates: rates()}))

	price, err := h.GetPrice(context.Background(), "lamp", "", "")
	require.NoError(t, err)
	assert.Equal(t, dto.PriceDTO{Currency: "CZK", Price: "480.00", IsManual: true}, *price)

	// the price list keeps reporting the stored price for the main currency
	list, err := h.GetPriceList(context.Background(), "lamp", "")
	require.NoError(t, err)
	assert.Equal(t, "500.00", list.Prices["CZK"].Price)
}

func TestGetPrice_UnknownCurrency(t *testing.T) {
	h := NewHandler(&fakeReadModel{product: lamp()}, fakeManual{}, currencies(t, &rateSource{rates: rates()}))

	_, err := h.GetPrice(context.Background(), "lamp", "", "GBP")
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestGetPrice_RatesUnavailable(t *testing.T) {
	h := NewHandler(&fakeReadModel{product: lamp()}, fakeManual{}, currencies(t, &rateSource{err: errors.New("boom")}))

	_, err := h.GetPrice(context.Background(), "lamp", "", "EUR")
	assert.ErrorIs(t, err, domain.ErrExchangeRateUnavailable)
}

func TestGetPrice_NoConverter(t *testing.T) {
	manual := fakeManual{{"lamp", "", "EUR"}: domain.NewMoneyFromInt(21)}
	h := NewHandler(&fakeReadModel{product: lamp()}, manual, nil)

	price, err := h.GetPrice(context.Background(), "lamp", "", "EUR")
	require.NoError(t, err)
	assert.Equal(t, "21.00", price.Price)

	_, err = h.GetPrice(context.Background(), "lamp", "", "USD")
	assert.ErrorIs(t, err, domain.ErrExchangeRateUnavailable)

	_, err = h.GetPriceList(context.Background(), "lamp", "")
	assert.ErrorIs(t, err, domain.ErrExchangeRateUnavailable)
}

func TestGetPrice_ProductNotFound(t *testing.T) {
	h := NewHandler(&fakeReadModel{}, fakeManual{}, nil)

	_, err := h.GetPrice(context.Background(), "missing", "", "EUR")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestExchangeCurrencies_FallbackMain(t *testing.T) {
	src := &rateSource{rates: []exchange.Currency{{Code: "EUR", Rate: big.NewRat(1, 1)}}}
	c := NewExchangeCurrencies(exchange.NewConverter(src, t.Name(), exchange.DefaultBreakerConfig()), "EUR")

	main, err := c.MainCurrency(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EUR", main)

	_, err = currencies(t, src).MainCurrency(context.Background())
	assert.ErrorIs(t, err, domain.ErrExchangeRateUnavailable)
}
