package calculator

import (
	"fmt"
	"math"
	"simcompare/internal/domain"
	"simcompare/internal/util"
	"time"
)

// DaysBetween is the number of whole days from start to end, floored.
// it is zero or negative when end is not after start
func DaysBetween(start, end time.Time) int {
	return int(math.Floor(end.Sub(start).Hours() / 24))
}

// SimulatedDayCount uses the first and last snapshot rather than the
// requested range, since the requested dates may not be trading days
func SimulatedDayCount(result domain.SimulationResult) (int, error) {
	first, err := result.FirstPortfolio()
	if err != nil {
		return 0, fmt.Errorf("failed to count simulated days: %w", err)
	}
	last, err := result.LastPortfolio()
	if err != nil {
		return 0, fmt.Errorf("failed to count simulated days: %w", err)
	}

	start, err := util.ParseDate(first.Date)
	if err != nil {
		return 0, err
	}
	end, err := util.ParseDate(last.Date)
	if err != nil {
		return 0, err
	}

	return DaysBetween(start, end), nil
}
