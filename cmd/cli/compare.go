package main

import (
	"fmt"
	"io"
	"path/filepath"
	"simcompare/internal/domain"
	"simcompare/internal/repository"
	"simcompare/internal/service"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var (
		csvOutput  bool
		jsonOutput bool
	)

	compareCmd := &cobra.Command{
		Use:   "compare <result.json>...",
		Short: "Compare exported simulation results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := loadResults(args)
			if err != nil {
				return err
			}
			simulationRepository, err := repository.NewInMemorySimulationRepository(results)
			if err != nil {
				return err
			}
			comparisonService := service.NewComparisonService(simulationRepository)

			ids := []string{}
			for _, r := range results {
				ids = append(ids, r.ID)
			}
			comparison, err := comparisonService.Compare(cmd.Context(), ids)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case csvOutput:
				return comparisonService.ExportCSV(*comparison, out)
			case jsonOutput:
				return writeJson(out, comparison)
			}
			return writeComparison(out, *comparison)
		},
	}

	compareCmd.Flags().BoolVar(&csvOutput, "csv", false, "write one csv row per simulation and metric")
	compareCmd.Flags().BoolVar(&jsonOutput, "json", false, "write the full comparison as json")
	compareCmd.MarkFlagsMutuallyExclusive("csv", "json")

	return compareCmd
}

// loadResults reads exported results. a result without an id is named
// after its file
func loadResults(paths []string) ([]domain.SimulationResult, error) {
	out := []domain.SimulationResult{}
	for _, p := range paths {
		r := domain.SimulationResult{}
		if err := readJsonFile(p, &r); err != nil {
			return nil, err
		}
		if r.ID == "" {
			r.ID = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		}
		out = append(out, r)
	}
	return out, nil
}

func writeComparison(w io.Writer, comparison service.Comparison) error {
	for _, s := range comparison.Summaries {
		if err := writeTable(w, fmt.Sprintf("Simulation %s - Configuration", s.SimulationID), s.Configuration); err != nil {
			return err
		}
		if err := writeTable(w, fmt.Sprintf("Simulation %s - Results", s.SimulationID), s.Results); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	for _, m := range comparison.BarChartMetrics {
		fmt.Fprintf(w, "%s (axis %s to %s, step %s)\n",
			m.Label,
			humanize.FormatFloat("#,###.##", m.YAxis.Min),
			humanize.FormatFloat("#,###.##", m.YAxis.Max),
			humanize.FormatFloat("#,###.##", m.YAxis.Step),
		)
		for i, v := range m.Values {
			fmt.Fprintf(w, "  %s: %s\n", comparison.SimulationIDs[i], humanize.FormatFloat("#,###.##", v))
		}
	}

	return nil
}
