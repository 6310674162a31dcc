package formatter

import (
	"fmt"
	"simcompare/internal/domain"
	"strings"
)

// NotApplicable fills a row that has no meaning for the strategy
const NotApplicable = "-"

const (
	Label_Strategy          = "Strategy"
	Label_Indicators        = "Indicators"
	Label_Stocks            = "Stocks"
	Label_StartCapital      = "Start Capital"
	Label_TradingDays       = "Trading Days"
	Label_TransactionBuffer = "Transaction Buffer"
	Label_RiskTolerance     = "Risk Tolerance"
	Label_Broker            = "Broker"
	Label_StartDate         = "Start Date"
	Label_EndDate           = "End Date"
)

// FormatConfiguration describes how a simulation was set up, one row
// per setting, in display order
func FormatConfiguration(result domain.SimulationResult) (domain.Table, error) {
	req := result.StockSimulationRequest

	strategy, err := req.Strategy()
	if err != nil {
		return nil, err
	}
	strategyDescription, err := DescribeStrategy(strategy)
	if err != nil {
		return nil, err
	}
	indicators, err := DescribeIndicators(req.Indicators)
	if err != nil {
		return nil, err
	}
	weekdays, err := describeWeekdays(req.TradingWeekdays)
	if err != nil {
		return nil, err
	}

	t := domain.Table{}
	t.Add(Label_Strategy, strategyDescription)
	t.Add(Label_Indicators, indicators)
	t.Add(Label_Stocks, strings.Join(req.Stocks, ", "))
	t.Add(Label_StartCapital, FormatCurrency(req.StartCapital, result.Currency()))
	t.Add(Label_TradingDays, weekdays)

	switch s := strategy.(type) {
	case domain.RiskBasedStrategy:
		t.Add(Label_TransactionBuffer, formatTolerance(s.TransactionBufferPercentage))
		t.Add(Label_RiskTolerance, formatTolerance(s.RiskTolerance))
	case domain.StaticAllocationStrategy:
		t.Add(Label_TransactionBuffer, NotApplicable)
		t.Add(Label_RiskTolerance, formatTolerance(s.RiskTolerance))
	default:
		t.Add(Label_TransactionBuffer, NotApplicable)
	}

	t.Add(Label_Broker, req.Broker)
	t.Add(Label_StartDate, req.StartDate)
	t.Add(Label_EndDate, req.EndDate)

	return t, nil
}

func DescribeStrategy(s domain.Strategy) (string, error) {
	switch s := s.(type) {
	case domain.BuyAndHoldStrategy:
		return "Buy and Hold", nil
	case domain.RiskBasedStrategy:
		return fmt.Sprintf("Risk-Based (risk tolerance %s)", formatTolerance(s.RiskTolerance)), nil
	case domain.StaticAllocationStrategy:
		return fmt.Sprintf("Static Allocation (risk tolerance %s)", formatTolerance(s.RiskTolerance)), nil
	}
	return "", fmt.Errorf("no description for strategy %T", s)
}

func DescribeIndicator(indicator domain.Indicator) (string, error) {
	switch i := indicator.(type) {
	case domain.MovingAverageCrossoverIndicator:
		return fmt.Sprintf("Moving Average Crossover (short %d days, long %d days)", i.ShortPeriod, i.LongPeriod), nil
	case domain.BreakoutIndicator:
		return fmt.Sprintf("Breakout (%d days)", i.Period), nil
	case domain.MACDIndicator:
		return fmt.Sprintf("MACD (short %d days, long %d days)", i.ShortPeriod, i.LongPeriod), nil
	}
	return "", domain.UnrecognizedIndicatorError{Type: fmt.Sprintf("%T", indicator)}
}

// DescribeIndicators puts one indicator per line
func DescribeIndicators(indicators domain.Indicators) (string, error) {
	if len(indicators) == 0 {
		return "None", nil
	}
	lines := []string{}
	for _, i := range indicators {
		line, err := DescribeIndicator(i)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func describeWeekdays(weekdays []domain.Weekday) (string, error) {
	sorted, err := domain.SortWeekdays(weekdays)
	if err != nil {
		return "", err
	}
	labels := []string{}
	for _, w := range sorted {
		label, err := w.Label()
		if err != nil {
			return "", err
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, ", "), nil
}
