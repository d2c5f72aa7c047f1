package calculations

import (
	"fmt"

	"github.com/cloud-ru/npv-dashboard/pkg/utils"
)

// PeriodTable строит таблицу из N+1 строк: период 0 и периоды 1..N.
// Для периода 0 PV равна самой сумме, FV наращивается до периода N.
func PeriodTable(initialInvestment float64, cashFlows []float64, discountRate float64) ([]PeriodRecord, error) {
	if err := checkFinite(initialInvestment, cashFlows); err != nil {
		return nil, err
	}
	if err := checkRate(discountRate); err != nil {
		return nil, err
	}

	n := len(cashFlows)
	table := make([]PeriodRecord, 0, n+1)
	table = append(table, PeriodRecord{
		Period:       0,
		CashFlow:     initialInvestment,
		PresentValue: initialInvestment,
		FutureValue:  futureValue(initialInvestment, discountRate, 0, n),
	})

	for t := 1; t <= n; t++ {
		cf := cashFlows[t-1]
		table = append(table, PeriodRecord{
			Period:       t,
			CashFlow:     cf,
			PresentValue: presentValue(cf, discountRate, t),
			FutureValue:  futureValue(cf, discountRate, t, n),
		})
	}

	for _, rec := range table {
		if !utils.IsFinite(rec.PresentValue) || !utils.IsFinite(rec.FutureValue) {
			return nil, fmt.Errorf("period %d: %w", rec.Period, ErrNonFiniteResult)
		}
	}

	return table, nil
}
