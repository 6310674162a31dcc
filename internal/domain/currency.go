package domain

import "strings"

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"CHF": "CHF ",
	"JPY": "¥",
}

// CurrencySymbol maps a currency code to its display symbol. unknown
// codes fall back to the code itself followed by a space
func CurrencySymbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	if code == "" {
		return ""
	}
	return code + " "
}
