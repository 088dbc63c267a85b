package extractor

import "strings"

// currencySymbols maps ISO 4217 currency codes to display symbols.
var currencySymbols = map[string]string{
	"GBP": "£",
	"USD": "$",
	"EUR": "€",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "C$",
	"PLN": "zł",
	"SEK": "kr",
	"CHF": "CHF",
}

// CurrencySymbol maps a currency code to its display symbol.
// Unmapped codes pass through unchanged.
func CurrencySymbol(code string) string {
	if symbol, ok := currencySymbols[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return symbol
	}

	return code
}
