package dashboard

import (
	"strconv"

	"github.com/cloud-ru/npv-dashboard/internal/calculations"
	"github.com/cloud-ru/npv-dashboard/pkg/utils"
)

// Series is one named data set of a chart.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Chart is the data for one client-side chart.
type Chart struct {
	Kind   string   `json:"kind"` // line | bar
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// Charts groups the dashboard charts.
type Charts struct {
	Timeline   Chart `json:"timeline"`
	NPVProfile Chart `json:"irr_vs_discount"`
	RateBars   Chart `json:"rate_comparison"`
	PVvsFV     Chart `json:"pv_vs_fv"`
}

func buildCharts(a *calculations.AnalysisResult, profile []calculations.ProfilePoint) Charts {
	periodLabels := make([]string, 0, len(a.Table))
	cash := make([]float64, 0, len(a.Table))
	pv := make([]float64, 0, len(a.Table))
	fv := make([]float64, 0, len(a.Table))
	for _, rec := range a.Table {
		periodLabels = append(periodLabels, "Year "+strconv.Itoa(rec.Period))
		cash = append(cash, utils.Round2(rec.CashFlow))
		pv = append(pv, utils.Round2(rec.PresentValue))
		fv = append(fv, utils.Round2(rec.FutureValue))
	}

	rateLabels := make([]string, 0, len(profile))
	npvs := make([]float64, 0, len(profile))
	for _, p := range profile {
		rateLabels = append(rateLabels, strconv.FormatFloat(p.RatePercent, 'f', 0, 64)+"%")
		npvs = append(npvs, utils.Round2(p.NPV))
	}

	m := a.Metrics
	rateBars := Chart{
		Kind:   "bar",
		Title:  "IRR vs Discount Rate",
		Labels: []string{"Discount Rate", "IRR"},
		Series: []Series{{Name: "Rate %", Values: []float64{utils.Round2(m.DiscountRate * 100), utils.Round2(m.IRRPercent)}}},
	}
	if !m.IRRDetermined {
		rateBars.Labels = rateBars.Labels[:1]
		rateBars.Series[0].Values = rateBars.Series[0].Values[:1]
	}

	// Период 0 в PV/FV не показывается, как и в итогах
	var pvfvLabels []string
	var pvfvPV, pvfvFV []float64
	if len(periodLabels) > 1 {
		pvfvLabels, pvfvPV, pvfvFV = periodLabels[1:], pv[1:], fv[1:]
	}

	return Charts{
		Timeline: Chart{
			Kind:   "line",
			Title:  "Cash Flow Timeline",
			Labels: periodLabels,
			Series: []Series{{Name: "Cash Flow", Values: cash}, {Name: "Present Value", Values: pv}},
		},
		NPVProfile: Chart{
			Kind:   "line",
			Title:  "NPV by Discount Rate",
			Labels: rateLabels,
			Series: []Series{{Name: "NPV", Values: npvs}},
		},
		RateBars: rateBars,
		PVvsFV: Chart{
			Kind:   "bar",
			Title:  "Present vs Future Value",
			Labels: pvfvLabels,
			Series: []Series{{Name: "Present Value", Values: pvfvPV}, {Name: "Future Value", Values: pvfvFV}},
		},
	}
}
