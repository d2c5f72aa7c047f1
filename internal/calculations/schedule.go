package calculations

import (
	"fmt"

	"github.com/cloud-ru/npv-dashboard/pkg/utils"
)

// Schedule - неизменяемый график денежных потоков: период 0 и периоды 1..N
type Schedule struct {
	initial   float64
	cashFlows []float64
}

// NewSchedule создает график, копируя входной срез
func NewSchedule(initialInvestment float64, cashFlows []float64) (Schedule, error) {
	if err := checkFinite(initialInvestment, cashFlows); err != nil {
		return Schedule{}, err
	}
	flows := make([]float64, len(cashFlows))
	copy(flows, cashFlows)
	return Schedule{initial: initialInvestment, cashFlows: flows}, nil
}

// InitialInvestment возвращает сумму периода 0
func (s Schedule) InitialInvestment() float64 {
	return s.initial
}

// CashFlows возвращает копию потоков периодов 1..N
func (s Schedule) CashFlows() []float64 {
	out := make([]float64, len(s.cashFlows))
	copy(out, s.cashFlows)
	return out
}

// Periods возвращает N
func (s Schedule) Periods() int {
	return len(s.cashFlows)
}

func checkFinite(initialInvestment float64, cashFlows []float64) error {
	if !utils.IsFinite(initialInvestment) {
		return fmt.Errorf("initial investment: %w", ErrNonFiniteInput)
	}
	if i := utils.AllFinite(cashFlows); i >= 0 {
		return fmt.Errorf("cash flow %d: %w", i+1, ErrNonFiniteInput)
	}
	return nil
}

func checkRate(discountRate float64) error {
	if !utils.IsFinite(discountRate) {
		return fmt.Errorf("discount rate: %w", ErrNonFiniteInput)
	}
	if discountRate <= -1 {
		return fmt.Errorf("discount rate %v: %w", discountRate, ErrInvalidDiscountRate)
	}
	return nil
}
