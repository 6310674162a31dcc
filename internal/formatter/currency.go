package formatter

import (
	"fmt"
	"simcompare/internal/domain"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount with its currency symbol and
// grouped thousands, always with two decimals: "€1,234.50"
func FormatCurrency(amount float64, currencyCode string) string {
	rounded := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + domain.CurrencySymbol(currencyCode) + humanize.FormatFloat("#,###.##", rounded.Abs().InexactFloat64())
}

func FormatPercentage(value float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, value)
}

// formatTolerance keeps the number as entered, no padding zeros
func formatTolerance(value float64) string {
	return decimal.NewFromFloat(value).String() + "%"
}
