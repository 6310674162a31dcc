package formatter

import (
	"simcompare/internal/calculator"
	"simcompare/internal/domain"
	"strconv"
)

const (
	Label_SimulatedDays           = "Simulated Days"
	Label_FinalValue              = "Final Value"
	Label_ProfitMargin            = "Profit Margin"
	Label_ProfitMarginIgnoringFee = "Profit Margin Excl. Fees"
	Label_AverageDailyGrowth      = "Average Daily Growth"
	Label_TransactionCount        = "Transactions"
	Label_TotalFees               = "Total Fees"
)

func FormatResults(result domain.SimulationResult) (domain.Table, error) {
	metrics, err := calculator.CalculateMetrics(result)
	if err != nil {
		return nil, err
	}
	return FormatMetrics(*metrics, result.Currency()), nil
}

// FormatMetrics is FormatResults for callers that already hold the
// derived metrics
func FormatMetrics(metrics calculator.DerivedMetrics, currencyCode string) domain.Table {
	t := domain.Table{}
	t.Add(Label_SimulatedDays, strconv.Itoa(metrics.SimulatedDays))
	t.Add(Label_FinalValue, FormatCurrency(metrics.FinalValue, currencyCode))
	t.Add(Label_ProfitMargin, FormatPercentage(metrics.ProfitMarginPercentage, 2))
	t.Add(Label_ProfitMarginIgnoringFee, FormatPercentage(metrics.ProfitMarginPercentageIgnoringFees, 2))
	t.Add(Label_AverageDailyGrowth, FormatPercentage(metrics.AverageDailyCompoundedGrowthPercentage, 3))
	t.Add(Label_TransactionCount, strconv.Itoa(metrics.TransactionCount))
	t.Add(Label_TotalFees, FormatCurrency(metrics.TotalTransactionFees, currencyCode))

	return t
}
