package calculations

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/npv-dashboard/pkg/utils"
)

// Analyze считает NPV, IRR и таблицу периодов один раз для графика.
// Неопределенный IRR не является ошибкой: IRRDetermined = false.
func Analyze(schedule Schedule, discountRate float64) (*AnalysisResult, error) {
	initial := schedule.InitialInvestment()
	flows := schedule.CashFlows()

	npvValue, err := NetPresentValue(initial, flows, discountRate)
	if err != nil {
		return nil, fmt.Errorf("npv: %w", err)
	}

	table, err := PeriodTable(initial, flows, discountRate)
	if err != nil {
		return nil, fmt.Errorf("period table: %w", err)
	}

	irrPercent, err := InternalRateOfReturn(initial, flows)
	irrDetermined := true
	if err != nil {
		if !errors.Is(err, ErrIRRUndetermined) {
			return nil, fmt.Errorf("irr: %w", err)
		}
		irrPercent = 0
		irrDetermined = false
	}

	totalPV, totalFV := 0.0, 0.0
	for _, rec := range table[1:] {
		totalPV += rec.PresentValue
		totalFV += rec.FutureValue
	}
	if !utils.IsFinite(totalPV) || !utils.IsFinite(totalFV) {
		return nil, fmt.Errorf("period totals: %w", ErrNonFiniteResult)
	}

	return &AnalysisResult{
		Metrics: ProjectMetrics{
			NPV:               npvValue,
			IRRPercent:        irrPercent,
			IRRDetermined:     irrDetermined,
			TotalPresentValue: totalPV,
			TotalFutureValue:  totalFV,
			InitialInvestment: initial,
			DiscountRate:      discountRate,
		},
		Table: table,
	}, nil
}
