package validators

import (
	"fmt"
	"math"

	"github.com/cloud-ru/npv-dashboard/internal/config"
	"github.com/cloud-ru/npv-dashboard/pkg/utils"
)

// ValidateAmount проверяет, что сумма конечна и по модулю не превышает предел
func ValidateAmount(name string, value, maxAbs float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if math.Abs(value) > maxAbs {
		return fmt.Errorf("%s: значение слишком велико по модулю (>%.0f)", name, maxAbs)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckInitialInvestment проверяет сумму первоначальных инвестиций
func CheckInitialInvestment(cfg *config.Config, amount float64) error {
	return ValidateAmount("initial_investment", amount, cfg.MaxAmount)
}

// CheckDiscountRate проверяет ставку дисконтирования (доля, не проценты)
func CheckDiscountRate(rate float64) error {
	if !utils.IsFinite(rate) {
		return fmt.Errorf("discount_rate: значение не является конечным числом")
	}
	if rate <= -1 {
		return fmt.Errorf("discount_rate: значение должно быть > -1 (доля, например 0.12)")
	}
	return nil
}

// CheckCashFlows проверяет количество периодов и каждую сумму
func CheckCashFlows(cfg *config.Config, cashFlows []float64) error {
	if err := ValidateIntRange("cash_flows", len(cashFlows), 0, cfg.MaxPeriods); err != nil {
		return err
	}
	for i, cf := range cashFlows {
		if err := ValidateAmount(fmt.Sprintf("cash_flows[%d]", i), cf, cfg.MaxAmount); err != nil {
			return err
		}
	}
	return nil
}

// CheckScenario проверяет все входные данные расчета
func CheckScenario(cfg *config.Config, initialInvestment, discountRate float64, cashFlows []float64) error {
	if err := CheckInitialInvestment(cfg, initialInvestment); err != nil {
		return err
	}
	if err := CheckDiscountRate(discountRate); err != nil {
		return err
	}
	return CheckCashFlows(cfg, cashFlows)
}
