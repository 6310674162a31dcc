package main

import (
	"fmt"
	"simcompare/internal/domain"
	"simcompare/internal/validation"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <request.json>",
		Short: "Check a simulation request before submitting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.StockSimulationRequest{}
			if err := readJsonFile(args[0], &req); err != nil {
				return err
			}

			fieldErrors, err := validation.ValidateSimulationRequest(req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(fieldErrors) == 0 {
				fmt.Fprintln(out, "request is valid")
				return nil
			}
			for _, fe := range fieldErrors {
				fmt.Fprintln(out, fe.Error())
			}
			return fmt.Errorf("request has %d invalid fields: %w", len(fieldErrors), domain.ErrInvalidInput)
		},
	}
}
