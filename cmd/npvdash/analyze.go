package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/npv-dashboard/internal/calculations"
	"github.com/cloud-ru/npv-dashboard/internal/format"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print NPV, IRR and the period table",
	RunE: func(cmd *cobra.Command, args []string) error {
		schedule, err := scenario(cfg)
		if err != nil {
			return err
		}
		result, err := calculations.Analyze(schedule, cfg.DiscountRate)
		if err != nil {
			return err
		}
		if analyzeJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}
		return printAnalysis(cmd.OutOrStdout(), result, format.Default())
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print JSON instead of a table")
}

func printAnalysis(out io.Writer, r *calculations.AnalysisResult, f *format.Formatter) error {
	m := r.Metrics
	irr := "undetermined"
	if m.IRRDetermined {
		irr = f.Percent(m.IRRPercent)
	}
	cmp := calculations.CompareRates(m)

	fmt.Fprintf(out, "NPV:                 %s\n", f.Currency(m.NPV))
	fmt.Fprintf(out, "IRR:                 %s\n", irr)
	fmt.Fprintf(out, "Discount rate:       %s\n", f.Rate(m.DiscountRate))
	fmt.Fprintf(out, "Initial investment:  %s\n", f.Currency(m.InitialInvestment))
	fmt.Fprintf(out, "Total PV (1..N):     %s\n", f.Currency(m.TotalPresentValue))
	fmt.Fprintf(out, "Total FV (1..N):     %s\n", f.Currency(m.TotalFutureValue))
	fmt.Fprintf(out, "Decision:            %s\n\n", cmp.Decision)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Year\tCash Flow\tPresent Value\tFuture Value\t")
	for _, rec := range r.Table {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", rec.Period, f.Currency(rec.CashFlow), f.Currency(rec.PresentValue), f.Currency(rec.FutureValue))
	}
	return w.Flush()
}
