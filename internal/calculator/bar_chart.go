package calculator

import (
	"fmt"
	"math"
	"simcompare/internal/domain"

	"github.com/montanaflynn/stats"
)

const (
	MetricLabel_SimulatedDays           = "Simulated Days"
	MetricLabel_ProfitMargin            = "Profit Margin (%)"
	MetricLabel_ProfitMarginIgnoringFee = "Profit Margin Excl. Fees (%)"
	MetricLabel_AverageDailyGrowth      = "Average Daily Growth (%)"
	MetricLabel_TransactionCount        = "Transactions"
	MetricLabel_TotalTransactionFees    = "Total Transaction Fees"
)

// BarChartMetric is one group of bars. Values[i] belongs to the i-th
// simulation passed to AggregateBarChartMetrics
type BarChartMetric struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// AggregateBarChartMetrics collects the scalar metrics of every result
// into parallel arrays. a metric that is exactly zero for every
// simulation carries no information and is left out
func AggregateBarChartMetrics(results []domain.SimulationResult) ([]BarChartMetric, error) {
	metrics := []*DerivedMetrics{}
	for _, r := range results {
		m, err := CalculateMetrics(r)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate metrics for simulation %s: %w", r.ID, err)
		}
		metrics = append(metrics, m)
	}

	return aggregate(metrics), nil
}

func aggregate(metrics []*DerivedMetrics) []BarChartMetric {
	extractors := []struct {
		label string
		fn    func(m DerivedMetrics) float64
	}{
		{MetricLabel_SimulatedDays, func(m DerivedMetrics) float64 { return float64(m.SimulatedDays) }},
		{MetricLabel_ProfitMargin, func(m DerivedMetrics) float64 { return m.ProfitMarginPercentage }},
		{MetricLabel_ProfitMarginIgnoringFee, func(m DerivedMetrics) float64 { return m.ProfitMarginPercentageIgnoringFees }},
		{MetricLabel_AverageDailyGrowth, func(m DerivedMetrics) float64 { return m.AverageDailyCompoundedGrowthPercentage }},
		{MetricLabel_TransactionCount, func(m DerivedMetrics) float64 { return float64(m.TransactionCount) }},
		{MetricLabel_TotalTransactionFees, func(m DerivedMetrics) float64 { return m.TotalTransactionFees }},
	}

	out := []BarChartMetric{}
	for _, e := range extractors {
		values := make([]float64, 0, len(metrics))
		for _, m := range metrics {
			values = append(values, e.fn(*m))
		}
		if allZero(values) {
			continue
		}
		out = append(out, BarChartMetric{
			Label:  e.label,
			Values: values,
		})
	}

	return out
}

func allZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}

// NiceStep rounds a raw step up to 1, 2 or 5 times a power of ten,
// e.g. 37 -> 50, 340 -> 500
func NiceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	leading := raw / magnitude

	var nice float64
	switch {
	case leading <= 1:
		nice = 1
	case leading <= 2:
		nice = 2
	case leading <= 5:
		nice = 5
	default:
		nice = 10
	}

	return nice * magnitude
}

type Axis struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// YAxis computes rounded bounds for a bar chart. the zero baseline is
// always inside the range since bars grow from it
func YAxis(values []float64, tickCount int) (*Axis, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("cannot compute axis: %w", domain.ErrEmptySeries)
	}
	if tickCount <= 0 {
		return nil, fmt.Errorf("tick count must be positive, got %d", tickCount)
	}

	lo, err := stats.Min(values)
	if err != nil {
		return nil, fmt.Errorf("failed to compute axis min: %w", err)
	}
	hi, err := stats.Max(values)
	if err != nil {
		return nil, fmt.Errorf("failed to compute axis max: %w", err)
	}
	lo = math.Min(lo, 0)
	hi = math.Max(hi, 0)

	step := NiceStep((hi - lo) / float64(tickCount))

	return &Axis{
		Min:  math.Floor(lo/step) * step,
		Max:  math.Ceil(hi/step) * step,
		Step: step,
	}, nil
}
