package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"simcompare/internal/calculator"
	"simcompare/internal/domain"
	"simcompare/internal/formatter"
	"simcompare/internal/logger"
	"simcompare/internal/repository"

	"github.com/gocarina/gocsv"
)

const (
	MaxComparedSimulations = 10
	YAxisTickCount         = 5
)

type ComparisonService interface {
	Compare(ctx context.Context, simulationIDs []string) (*Comparison, error)
	Summarize(ctx context.Context, simulationID string) (*SimulationSummary, error)
	ExportCSV(comparison Comparison, w io.Writer) error
}

type SimulationSummary struct {
	SimulationID      string                    `json:"simulationId"`
	Currency          string                    `json:"currency"`
	Configuration     domain.Table              `json:"configuration"`
	Results           domain.Table              `json:"results"`
	Metrics           calculator.DerivedMetrics `json:"metrics"`
	SimulationReports json.RawMessage           `json:"simulationReports,omitempty"`
}

type NormalizedSeries struct {
	SimulationID string             `json:"simulationId"`
	Points       []calculator.Point `json:"points"`
}

type ChartMetric struct {
	Label  string          `json:"label"`
	Values []float64       `json:"values"`
	YAxis  calculator.Axis `json:"yAxis"`
}

// Comparison holds everything the comparison view renders. every
// slice is ordered like SimulationIDs
type Comparison struct {
	SimulationIDs    []string            `json:"simulationIds"`
	Summaries        []SimulationSummary `json:"summaries"`
	NormalizedSeries []NormalizedSeries  `json:"normalizedSeries"`
	TickInterval     int                 `json:"tickInterval"`
	BarChartMetrics  []ChartMetric       `json:"barChartMetrics"`
}

type comparisonServiceHandler struct {
	SimulationRepository repository.SimulationRepository
}

func NewComparisonService(simulationRepository repository.SimulationRepository) ComparisonService {
	return comparisonServiceHandler{
		SimulationRepository: simulationRepository,
	}
}

func (h comparisonServiceHandler) Compare(ctx context.Context, simulationIDs []string) (*Comparison, error) {
	log := logger.FromContext(ctx)
	profile := domain.GetPerformanceProfile(ctx)

	if err := ValidateSimulationIDs(simulationIDs); err != nil {
		return nil, err
	}

	results := []domain.SimulationResult{}
	for _, id := range simulationIDs {
		result, err := h.SimulationRepository.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get simulation %s: %w", id, err)
		}
		results = append(results, *result)
	}
	profile.Add("fetched simulations")

	summaries := []SimulationSummary{}
	for _, r := range results {
		summary, err := summarize(r)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}

	normalized, err := calculator.NormalizeAll(results)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize portfolio series: %w", err)
	}
	series := []NormalizedSeries{}
	for i, points := range normalized {
		series = append(series, NormalizedSeries{
			SimulationID: results[i].ID,
			Points:       points,
		})
	}

	barChartMetrics, err := calculator.AggregateBarChartMetrics(results)
	if err != nil {
		return nil, err
	}
	chartMetrics := []ChartMetric{}
	for _, m := range barChartMetrics {
		axis, err := calculator.YAxis(m.Values, YAxisTickCount)
		if err != nil {
			return nil, fmt.Errorf("failed to compute axis for %s: %w", m.Label, err)
		}
		chartMetrics = append(chartMetrics, ChartMetric{
			Label:  m.Label,
			Values: m.Values,
			YAxis:  *axis,
		})
	}
	profile.Add("derived comparison metrics")

	log.Infof("compared %d simulations", len(results))

	return &Comparison{
		SimulationIDs:    simulationIDs,
		Summaries:        summaries,
		NormalizedSeries: series,
		TickInterval:     calculator.TickInterval(calculator.LongestSeries(normalized)),
		BarChartMetrics:  chartMetrics,
	}, nil
}

func (h comparisonServiceHandler) Summarize(ctx context.Context, simulationID string) (*SimulationSummary, error) {
	result, err := h.SimulationRepository.Get(ctx, simulationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get simulation %s: %w", simulationID, err)
	}
	domain.GetPerformanceProfile(ctx).Add("fetched simulation")

	return summarize(*result)
}

func summarize(result domain.SimulationResult) (*SimulationSummary, error) {
	configuration, err := formatter.FormatConfiguration(result)
	if err != nil {
		return nil, fmt.Errorf("failed to format configuration of simulation %s: %w", result.ID, err)
	}

	metrics, err := calculator.CalculateMetrics(result)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate metrics for simulation %s: %w", result.ID, err)
	}

	return &SimulationSummary{
		SimulationID:      result.ID,
		Currency:          result.Currency(),
		Configuration:     configuration,
		Results:           formatter.FormatMetrics(*metrics, result.Currency()),
		Metrics:           *metrics,
		SimulationReports: result.SimulationReports,
	}, nil
}

// ValidateSimulationIDs checks a list of ids can be compared: non-empty,
// at most MaxComparedSimulations, no blanks and no duplicates
func ValidateSimulationIDs(ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("at least one simulation id is required: %w", domain.ErrInvalidInput)
	}
	if len(ids) > MaxComparedSimulations {
		return fmt.Errorf("cannot compare more than %d simulations, got %d: %w", MaxComparedSimulations, len(ids), domain.ErrInvalidInput)
	}
	seen := map[string]bool{}
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("simulation id cannot be empty: %w", domain.ErrInvalidInput)
		}
		if seen[id] {
			return fmt.Errorf("simulation %s requested more than once: %w", id, domain.ErrInvalidInput)
		}
		seen[id] = true
	}
	return nil
}

type comparisonCsvRow struct {
	SimulationID string `csv:"simulation_id"`
	Metric       string `csv:"metric"`
	Value        string `csv:"value"`
}

// ExportCSV writes one row per simulation and results metric, using
// the same display values as the results table
func (h comparisonServiceHandler) ExportCSV(comparison Comparison, w io.Writer) error {
	rows := []comparisonCsvRow{}
	for _, s := range comparison.Summaries {
		for _, r := range s.Results {
			rows = append(rows, comparisonCsvRow{
				SimulationID: s.SimulationID,
				Metric:       r.Label,
				Value:        r.Value,
			})
		}
	}

	err := gocsv.Marshal(rows, w)
	if err != nil {
		return fmt.Errorf("failed to write comparison csv: %w", err)
	}

	return nil
}
