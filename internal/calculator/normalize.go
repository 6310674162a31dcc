package calculator

import (
	"fmt"
	"math"
	"simcompare/internal/domain"
)

// Point is one normalized sample. Day is the offset from the first
// snapshot, not a calendar date
type Point struct {
	Day   int     `json:"day"`
	Value float64 `json:"value"`
}

// Normalize rebases the portfolio value series so the first snapshot is
// 100. simulations of different calendar ranges can then be overlaid
// from a common origin
func Normalize(portfolios []domain.UserPortfolio) ([]Point, error) {
	if len(portfolios) == 0 {
		return nil, fmt.Errorf("cannot normalize: %w", domain.ErrEmptySeries)
	}
	base := portfolios[0].TotalPortfolioValue
	if base == 0 {
		return nil, fmt.Errorf("cannot normalize series with a starting value of 0: %w", domain.ErrDivisionByZero)
	}

	out := make([]Point, 0, len(portfolios))
	for i, p := range portfolios {
		out = append(out, Point{
			Day:   i,
			Value: p.TotalPortfolioValue / base * 100,
		})
	}

	return out, nil
}

// NormalizeAll keeps the order of the input: out[i] belongs to results[i]
func NormalizeAll(results []domain.SimulationResult) ([][]Point, error) {
	out := [][]Point{}
	for _, r := range results {
		series, err := Normalize(r.UserPortfolios)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize simulation %s: %w", r.ID, err)
		}
		out = append(out, series)
	}
	return out, nil
}

func LongestSeries(series [][]Point) int {
	longest := 0
	for _, s := range series {
		if len(s) > longest {
			longest = len(s)
		}
	}
	return longest
}

const targetTickCount = 10

// TickInterval picks a label interval for the day axis that gives
// roughly ten ticks
func TickInterval(maxLength int) int {
	interval := int(math.Ceil(float64(maxLength) / targetTickCount))
	if interval < 1 {
		return 1
	}
	return interval
}
