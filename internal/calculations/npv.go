package calculations

import (
	"fmt"
	"math"

	"github.com/cloud-ru/npv-dashboard/pkg/utils"
)

// NetPresentValue рассчитывает NPV:
// initialInvestment + Σ cashFlows[t-1] / (1+r)^t, t = 1..N.
func NetPresentValue(initialInvestment float64, cashFlows []float64, discountRate float64) (float64, error) {
	if err := checkFinite(initialInvestment, cashFlows); err != nil {
		return 0, err
	}
	if err := checkRate(discountRate); err != nil {
		return 0, err
	}
	v := npv(initialInvestment, cashFlows, discountRate)
	if !utils.IsFinite(v) {
		return 0, fmt.Errorf("npv at rate %v: %w", discountRate, ErrNonFiniteResult)
	}
	return v, nil
}

// npv без проверок, для итераций поиска IRR
func npv(initialInvestment float64, cashFlows []float64, r float64) float64 {
	total := initialInvestment
	base := 1.0 + r
	discount := 1.0
	for _, cf := range cashFlows {
		discount *= base
		total += cf / discount
	}
	return total
}

// presentValue дисконтирует сумму периода t к периоду 0
func presentValue(amount, r float64, t int) float64 {
	return amount / math.Pow(1.0+r, float64(t))
}

// futureValue наращивает сумму периода t до периода n
func futureValue(amount, r float64, t, n int) float64 {
	return amount * math.Pow(1.0+r, float64(n-t))
}
