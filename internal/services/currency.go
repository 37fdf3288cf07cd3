package services

import (
	"fmt"
	"math"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"
)

// CurrencyConverter converts monetary amounts between the supported
// currencies using a fixed table of currency-to-USD rates. The table is
// injected configuration, not live market data.
type CurrencyConverter struct {
	usdRates map[models.Currency]float64
}

// DefaultUSDRates returns the shipped rate table: how many units of each
// currency one USD buys.
func DefaultUSDRates() map[models.Currency]float64 {
	return map[models.Currency]float64{
		models.CurrencyUSD: 1.0,
		models.CurrencyEUR: 0.92,
		models.CurrencyCZK: 22.8,
	}
}

// NewCurrencyConverter creates a converter backed by the given rate table.
// A nil table falls back to the defaults.
func NewCurrencyConverter(usdRates map[models.Currency]float64) *CurrencyConverter {
	if usdRates == nil {
		usdRates = DefaultUSDRates()
	}
	return &CurrencyConverter{usdRates: usdRates}
}

// Convert converts amount from one currency to another. Equal currencies are
// an identity; otherwise the amount goes through USD and the result is
// rounded to 2 decimal places.
func (c *CurrencyConverter) Convert(amount float64, from, to models.Currency) (float64, error) {
	if from == to {
		return amount, nil
	}

	fromRate, ok := c.usdRates[from]
	if !ok || fromRate == 0 {
		return 0, fmt.Errorf("no USD rate for currency %q: %w", from, apperrors.ErrConfiguration)
	}
	toRate, ok := c.usdRates[to]
	if !ok {
		return 0, fmt.Errorf("no USD rate for currency %q: %w", to, apperrors.ErrConfiguration)
	}

	amountInUSD := amount / fromRate
	return round2(amountInUSD * toRate), nil
}

// round2 rounds to 2 decimal places, the store's money precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
