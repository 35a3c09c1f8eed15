// Package currency converts storefront prices between the supported currency
// codes through a fixed PKR-based rate table.
package currency

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedCurrency is returned for codes outside the rate table.
var ErrUnsupportedCurrency = errors.New("unsupported currency code")

// rates express 1 PKR in the target currency.
var rates = map[string]float64{
	"PKR": 1,
	"USD": 0.0036,
	"AED": 0.013,
	"GBP": 0.0028,
}

var symbols = map[string]string{
	"PKR": "PKR",
	"USD": "$",
	"AED": "AED",
	"GBP": "£",
}

// Supported reports whether code is in the rate table.
func Supported(code string) bool {
	_, ok := rates[code]
	return ok
}

// Convert converts amount from one currency to another via the PKR base rate
// and rounds to the nearest whole unit. Unknown codes return
// ErrUnsupportedCurrency.
func Convert(amount float64, from, to string) (int64, error) {
	fromRate, ok := rates[from]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, from)
	}
	toRate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, to)
	}

	pkrAmount := amount / fromRate
	return int64(math.Round(pkrAmount * toRate)), nil
}

// Symbol returns the display symbol for a currency code, falling back to the
// code itself.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}
