package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/npv-dashboard/internal/calculations"
	"github.com/cloud-ru/npv-dashboard/internal/narrative"
)

var narrateCmd = &cobra.Command{
	Use:   "narrate",
	Short: "Ask the model for a written analysis and print it as Markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		schedule, err := scenario(cfg)
		if err != nil {
			return err
		}
		result, err := calculations.Analyze(schedule, cfg.DiscountRate)
		if err != nil {
			return err
		}

		narrator := narrative.NewNarrator(
			narrative.NewGeminiProvider(cfg.GeminiAPIKey, cfg.GeminiModel),
			logger,
			narrative.WithTimeout(cfg.NarrativeTimeout),
		)
		st, err := narrator.Generate(cmd.Context(), result.Metrics, result.Table)
		if err != nil {
			return err
		}
		if st.Status != narrative.StatusSucceeded {
			return errors.New(st.Reason)
		}
		fmt.Fprintln(cmd.OutOrStdout(), st.Text)
		return nil
	},
}
