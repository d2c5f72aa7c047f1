package narrative

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloud-ru/npv-dashboard/internal/calculations"
	"github.com/cloud-ru/npv-dashboard/pkg/utils"
)

// SystemPrompt frames the model as a capital-budgeting analyst.
const SystemPrompt = `You are a corporate finance analyst. You explain capital budgeting results
to non-specialists. Be concise, factual and use only the numbers you are given.
Answer in Markdown with short sections and bullet points.`

// payload is the JSON document embedded in the prompt.
type payload struct {
	Metrics payloadMetrics `json:"metrics"`
	Table   []payloadRow   `json:"period_table"`
}

type payloadMetrics struct {
	NPV                 float64  `json:"npv"`
	IRRPercent          *float64 `json:"irr_percent"`
	DiscountRatePercent float64  `json:"discount_rate_percent"`
	InitialInvestment   float64  `json:"initial_investment"`
	TotalPresentValue   float64  `json:"total_present_value_periods_1_to_n"`
	TotalFutureValue    float64  `json:"total_future_value_periods_1_to_n"`
}

type payloadRow struct {
	Period       int     `json:"period"`
	CashFlow     float64 `json:"cash_flow"`
	PresentValue float64 `json:"present_value"`
	FutureValue  float64 `json:"future_value"`
}

// BuildPrompt serializes metrics and the period table into the user prompt.
// An undetermined IRR is sent as null.
func BuildPrompt(m calculations.ProjectMetrics, table []calculations.PeriodRecord) (string, error) {
	p := payload{
		Metrics: payloadMetrics{
			NPV:                 utils.Round2(m.NPV),
			DiscountRatePercent: utils.Round2(m.DiscountRate * 100),
			InitialInvestment:   utils.Round2(m.InitialInvestment),
			TotalPresentValue:   utils.Round2(m.TotalPresentValue),
			TotalFutureValue:    utils.Round2(m.TotalFutureValue),
		},
		Table: make([]payloadRow, 0, len(table)),
	}
	if m.IRRDetermined {
		irr := utils.Round2(m.IRRPercent)
		p.Metrics.IRRPercent = &irr
	}
	for _, rec := range table {
		p.Table = append(p.Table, payloadRow{
			Period:       rec.Period,
			CashFlow:     utils.Round2(rec.CashFlow),
			PresentValue: utils.Round2(rec.PresentValue),
			FutureValue:  utils.Round2(rec.FutureValue),
		})
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal narrative payload: %w", err)
	}

	var b strings.Builder
	b.WriteString("Analyze the following investment project.\n\n")
	b.WriteString("```json\n")
	b.Write(data)
	b.WriteString("\n```\n\n")
	b.WriteString("Cover:\n")
	b.WriteString("1. Whether the project should be accepted, based on NPV and IRR versus the discount rate.\n")
	b.WriteString("2. How present values decline across periods and what that says about timing risk.\n")
	b.WriteString("3. The gap between future and present values.\n")
	b.WriteString("4. Two or three risks or sensitivities worth checking.\n")
	if !m.IRRDetermined {
		b.WriteString("\nIRR is null because the cash flows never change sign; do not invent a rate.\n")
	}
	return b.String(), nil
}
