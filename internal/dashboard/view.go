// Package dashboard holds the computed project view and renders it.
//
// A View is built once from the configured scenario; after that only the
// per-request UI state (view mode, sidebar) and the narration snapshot vary.
package dashboard

import (
	"fmt"

	"github.com/cloud-ru/npv-dashboard/internal/calculations"
	"github.com/cloud-ru/npv-dashboard/internal/format"
)

// ViewMode selects which panel the page shows.
type ViewMode string

const (
	ModeDashboard ViewMode = "dashboard"
	ModeTable     ViewMode = "table"
	ModeAI        ViewMode = "ai"
)

// ParseViewMode maps a query value to a ViewMode; empty means dashboard.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "", ModeDashboard:
		return ModeDashboard, nil
	case ModeTable:
		return ModeTable, nil
	case ModeAI:
		return ModeAI, nil
	}
	return "", fmt.Errorf("unknown view mode %q", s)
}

// Card is one headline figure.
type Card struct {
	Label string
	Value string
	Hint  string
	Tone  string // positive | negative | neutral
}

// Row is one formatted ledger line.
type Row struct {
	Period       int
	CashFlow     string
	PresentValue string
	FutureValue  string
	Negative     bool
}

// View is the read-only result of analyzing one scenario.
type View struct {
	Analysis   *calculations.AnalysisResult
	Comparison calculations.RateComparison
	Charts     Charts
	Cards      []Card
	Rows       []Row
	TotalRow   Row
}

// NewView runs the engine once and prepares everything the page shows.
func NewView(schedule calculations.Schedule, discountRate float64, f *format.Formatter) (*View, error) {
	analysis, err := calculations.Analyze(schedule, discountRate)
	if err != nil {
		return nil, err
	}

	profile, err := calculations.NPVProfile(schedule.InitialInvestment(), schedule.CashFlows(), calculations.DefaultProfileRates())
	if err != nil {
		return nil, err
	}

	v := &View{
		Analysis:   analysis,
		Comparison: calculations.CompareRates(analysis.Metrics),
		Charts:     buildCharts(analysis, profile),
	}
	v.Cards = buildCards(analysis.Metrics, f)
	v.Rows, v.TotalRow = buildRows(analysis, f)
	return v, nil
}

func buildCards(m calculations.ProjectMetrics, f *format.Formatter) []Card {
	npvTone := "neutral"
	switch {
	case m.NPV > 0:
		npvTone = "positive"
	case m.NPV < 0:
		npvTone = "negative"
	}

	irr := Card{Label: "IRR", Value: "n/a", Hint: "cash flows never change sign", Tone: "neutral"}
	if m.IRRDetermined {
		irr.Value = f.Percent(m.IRRPercent)
		irr.Hint = "vs " + f.Rate(m.DiscountRate) + " discount rate"
		irr.Tone = "negative"
		if m.IRRPercent > m.DiscountRate*100 {
			irr.Tone = "positive"
		}
	}

	return []Card{
		{Label: "Net Present Value", Value: f.Currency(m.NPV), Hint: "at " + f.Rate(m.DiscountRate), Tone: npvTone},
		irr,
		{Label: "Initial Investment", Value: f.Currency(m.InitialInvestment), Hint: "period 0", Tone: "neutral"},
		{Label: "Discount Rate", Value: f.Rate(m.DiscountRate), Hint: "per period", Tone: "neutral"},
		{Label: "Total Present Value", Value: f.Currency(m.TotalPresentValue), Hint: "periods 1..N", Tone: "neutral"},
		{Label: "Total Future Value", Value: f.Currency(m.TotalFutureValue), Hint: "periods 1..N", Tone: "neutral"},
	}
}

func buildRows(a *calculations.AnalysisResult, f *format.Formatter) ([]Row, Row) {
	rows := make([]Row, 0, len(a.Table))
	var cf, pv, fv float64
	for _, rec := range a.Table {
		cf += rec.CashFlow
		pv += rec.PresentValue
		fv += rec.FutureValue
		rows = append(rows, Row{
			Period:       rec.Period,
			CashFlow:     f.Currency(rec.CashFlow),
			PresentValue: f.Currency(rec.PresentValue),
			FutureValue:  f.Currency(rec.FutureValue),
			Negative:     rec.CashFlow < 0,
		})
	}
	total := Row{
		Period:       -1,
		CashFlow:     f.Currency(cf),
		PresentValue: f.Currency(pv),
		FutureValue:  f.Currency(fv),
		Negative:     cf < 0,
	}
	return rows, total
}
