// Package exchange converts amounts between the configured store currencies.
//
// Rates are expressed against the main currency: a rate of 25 for CZK means
// one unit of the main currency is worth 25 CZK. The main currency has rate 1.
package exchange

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/murkotick/catalog-engine/internal/logging"
	"github.com/murkotick/catalog-engine/internal/metrics"
)

var (
	// ErrUnknownCurrency is returned for a code missing from the rate table.
	ErrUnknownCurrency = errors.New("exchange: unknown currency")

	// ErrRatesUnavailable is returned when the rate table cannot be loaded or the breaker is open.
	ErrRatesUnavailable = errors.New("exchange: rates unavailable")

	// ErrNoMainCurrency is returned when no currency is flagged as main.
	ErrNoMainCurrency = errors.New("exchange: no main currency configured")
)

// Currency is one row of the rate table.
type Currency struct {
	Code string
	Rate *big.Rat
	Main bool
}

// RateSource loads the full rate table.
type RateSource interface {
	LoadRates(ctx context.Context) ([]Currency, error)
}

// BreakerConfig tunes the circuit breaker around the rate source.
type BreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests" validate:"min=1"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout" validate:"min=0"`
	FailureThreshold uint32        `koanf:"failure_threshold" validate:"min=1"`
}

// DefaultBreakerConfig is used when no configuration is supplied.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// Converter reads rates through a circuit breaker and converts between currencies.
// The rate table is loaded per call; only breaker state is shared between calls.
type Converter struct {
	source RateSource
	cb     *gobreaker.CircuitBreaker[[]Currency]
	name   string
}

// NewConverter wraps source with a circuit breaker named name.
func NewConverter(source RateSource, name string, cfg BreakerConfig) *Converter {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]Currency](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("exchange rate breaker state changed")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	return &Converter{source: source, cb: cb, name: name}
}

// MainCurrency returns the code of the currency flagged as main.
func (c *Converter) MainCurrency(ctx context.Context) (string, error) {
	rates, err := c.rates(ctx)
	if err != nil {
		return "", err
	}
	for _, cur := range rates {
		if cur.Main {
			return cur.Code, nil
		}
	}
	return "", ErrNoMainCurrency
}

// CurrencyCodes lists every configured currency, main currency first, the rest by code.
func (c *Converter) CurrencyCodes(ctx context.Context) ([]string, error) {
	rates, err := c.rates(ctx)
	if err != nil {
		return nil, err
	}
	sorted := slices.Clone(rates)
	slices.SortFunc(sorted, func(a, b Currency) int {
		if a.Main != b.Main {
			if a.Main {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Code, b.Code)
	})
	codes := make([]string, len(sorted))
	for i, cur := range sorted {
		codes[i] = cur.Code
	}
	return codes, nil
}

// Convert returns amount / rate(from) * rate(to).
func (c *Converter) Convert(ctx context.Context, amount *big.Rat, from, to string) (*big.Rat, error) {
	if strings.EqualFold(from, to) {
		return new(big.Rat).Set(amount), nil
	}
	rates, err := c.rates(ctx)
	if err != nil {
		return nil, err
	}
	fromRate, err := lookup(rates, from)
	if err != nil {
		return nil, err
	}
	toRate, err := lookup(rates, to)
	if err != nil {
		return nil, err
	}
	out := new(big.Rat).Quo(amount, fromRate)
	return out.Mul(out, toRate), nil
}

func (c *Converter) rates(ctx context.Context) ([]Currency, error) {
	rates, err := c.cb.Execute(func() ([]Currency, error) {
		return c.source.LoadRates(ctx)
	})
	if err != nil {
		result := "failure"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = "rejected"
		}
		metrics.CircuitBreakerRequests.WithLabelValues(c.name, result).Inc()
		logging.Ctx(ctx).Error().Err(err).Str("breaker", c.name).Msg("loading exchange rates failed")
		return nil, fmt.Errorf("%w: %v", ErrRatesUnavailable, err)
	}
	metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
	return rates, nil
}

func lookup(rates []Currency, code string) (*big.Rat, error) {
	for _, cur := range rates {
		if strings.EqualFold(cur.Code, code) {
			if cur.Rate == nil || cur.Rate.Sign() <= 0 {
				return nil, fmt.Errorf("%w: %s has no usable rate", ErrUnknownCurrency, code)
			}
			return cur.Rate, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
