package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"simcompare/internal/domain"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "simcompare",
		Short:         "Compare finished stock simulations",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}

func readJsonFile(path string, out interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	err = json.Unmarshal(b, out)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func writeJson(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeTable prints label/value rows aligned in two columns. values
// spanning several lines continue in the value column
func writeTable(w io.Writer, title string, t domain.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, title)
	for _, r := range t {
		lines := strings.Split(r.Value, "\n")
		fmt.Fprintf(tw, "  %s\t%s\n", r.Label, lines[0])
		for _, l := range lines[1:] {
			fmt.Fprintf(tw, "  \t%s\n", l)
		}
	}
	return tw.Flush()
}
