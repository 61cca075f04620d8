package domain

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyPKR Currency = "PKR"
)

// PKRPerUSD is the fixed display exchange rate. Prices are stored in
// USD only; conversion happens at render time, so the rate needs no
// live feed.
const PKRPerUSD = 278.0

// ParseCurrency resolves s to a supported currency,
// falling back to USD for unrecognized values.
func ParseCurrency(s string) Currency {
	if Currency(s) == CurrencyPKR {
		return CurrencyPKR
	}
	return CurrencyUSD
}

var groupedPrinter = message.NewPrinter(language.English)

// FormatPrice renders the canonical USD amount in currency c.
// USD renders with two decimals, PKR as a grouped whole number.
func FormatPrice(amountUSD float64, c Currency) string {
	if c == CurrencyPKR {
		pkr := int64(math.Round(amountUSD * PKRPerUSD))
		return groupedPrinter.Sprintf("PKR %d", pkr)
	}
	return fmt.Sprintf("$%.2f", amountUSD)
}
