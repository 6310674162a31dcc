package calculator

import (
	"fmt"
	"math"
	"simcompare/internal/domain"

	"github.com/shopspring/decimal"
)

type DerivedMetrics struct {
	SimulatedDays                          int     `json:"simulatedDays"`
	FinalValue                             float64 `json:"finalValue"`
	ProfitMarginPercentage                 float64 `json:"profitMarginPercentage"`
	ProfitMarginPercentageIgnoringFees     float64 `json:"profitMarginPercentageIgnoringFees"`
	AverageDailyCompoundedGrowthPercentage float64 `json:"averageDailyCompoundedGrowthPercentage"`
	TransactionCount                       int     `json:"transactionCount"`
	TotalTransactionFees                   float64 `json:"totalTransactionFees"`
}

// CalculateMetrics derives every comparable metric for one result.
// it fails on the first data-integrity problem instead of filling in
// a placeholder
func CalculateMetrics(result domain.SimulationResult) (*DerivedMetrics, error) {
	days, err := SimulatedDayCount(result)
	if err != nil {
		return nil, err
	}
	final, err := FinalValue(result)
	if err != nil {
		return nil, err
	}
	margin, err := ProfitMarginPercentage(result)
	if err != nil {
		return nil, err
	}
	marginIgnoringFees, err := ProfitMarginPercentageIgnoringFees(result)
	if err != nil {
		return nil, err
	}
	growth, err := AverageDailyCompoundedGrowthPercentage(result)
	if err != nil {
		return nil, err
	}

	return &DerivedMetrics{
		SimulatedDays:                          days,
		FinalValue:                             final,
		ProfitMarginPercentage:                 margin,
		ProfitMarginPercentageIgnoringFees:     marginIgnoringFees,
		AverageDailyCompoundedGrowthPercentage: growth,
		TransactionCount:                       TransactionCount(result),
		TotalTransactionFees:                   TotalTransactionFees(result).InexactFloat64(),
	}, nil
}

func FinalValue(result domain.SimulationResult) (float64, error) {
	last, err := result.LastPortfolio()
	if err != nil {
		return 0, fmt.Errorf("failed to get final value: %w", err)
	}
	return last.TotalPortfolioValue, nil
}

func ProfitMarginPercentage(result domain.SimulationResult) (float64, error) {
	final, err := FinalValue(result)
	if err != nil {
		return 0, err
	}
	return profitMargin(final, result.StartCapital())
}

// ProfitMarginPercentageIgnoringFees is the margin the user would have
// made with free trading
func ProfitMarginPercentageIgnoringFees(result domain.SimulationResult) (float64, error) {
	final, err := FinalValue(result)
	if err != nil {
		return 0, err
	}
	withFees := decimal.NewFromFloat(final).Add(TotalTransactionFees(result))
	return profitMargin(withFees.InexactFloat64(), result.StartCapital())
}

func profitMargin(final, startCapital float64) (float64, error) {
	if startCapital <= 0 {
		return 0, fmt.Errorf("cannot compute profit margin with start capital %f: %w", startCapital, domain.ErrDivisionByZero)
	}
	return (final - startCapital) / startCapital * 100, nil
}

// AverageDailyCompoundedGrowthPercentage is the constant daily rate that
// turns the start capital into the final value over the simulated days
func AverageDailyCompoundedGrowthPercentage(result domain.SimulationResult) (float64, error) {
	if len(result.UserPortfolios) < 2 {
		return 0, fmt.Errorf("cannot compute daily growth from %d snapshots: %w", len(result.UserPortfolios), domain.ErrDegenerateSimulation)
	}
	days, err := SimulatedDayCount(result)
	if err != nil {
		return 0, err
	}
	if days <= 0 {
		return 0, fmt.Errorf("cannot compute daily growth over %d days: %w", days, domain.ErrDegenerateSimulation)
	}
	if result.StartCapital() <= 0 {
		return 0, fmt.Errorf("cannot compute daily growth with start capital %f: %w", result.StartCapital(), domain.ErrDivisionByZero)
	}

	final, err := FinalValue(result)
	if err != nil {
		return 0, err
	}

	return (math.Pow(final/result.StartCapital(), 1/float64(days)) - 1) * 100, nil
}

// TransactionCount only counts real trades, zero-quantity records
// mean nothing happened for that symbol
func TransactionCount(result domain.SimulationResult) int {
	count := 0
	for _, p := range result.UserPortfolios {
		for _, t := range p.SharesBought {
			if t.IsTrade() {
				count++
			}
		}
	}
	return count
}

func TotalTransactionFees(result domain.SimulationResult) decimal.Decimal {
	total := decimal.Zero
	for _, p := range result.UserPortfolios {
		for _, t := range p.SharesBought {
			total = total.Add(decimal.NewFromFloat(t.TransactionFee))
		}
	}
	return total
}
