package calculations

import (
	"github.com/cloud-ru/npv-dashboard/pkg/utils"
)

// CompareRates сравнивает IRR проекта со ставкой дисконтирования
func CompareRates(m ProjectMetrics) RateComparison {
	discountPercent := m.DiscountRate * 100

	cmp := RateComparison{
		DiscountRatePercent: utils.Round2(discountPercent),
		IRRPercent:          utils.Round2(m.IRRPercent),
		IRRDetermined:       m.IRRDetermined,
	}

	if !m.IRRDetermined {
		cmp.Decision = DecisionUndetermined
		cmp.Recommendation = "IRR cannot be determined for this cash-flow pattern; judge the project by NPV alone."
		if m.NPV > 0 {
			cmp.Decision = DecisionAccept
		} else if m.NPV < 0 {
			cmp.Decision = DecisionReject
		}
		return cmp
	}

	cmp.SpreadPercent = utils.Round2(m.IRRPercent - discountPercent)

	// решение определяется NPV, фраза про IRR - знаком спреда;
	// при нестандартных потоках они могут расходиться
	irrClause := "IRR equals the discount rate"
	switch {
	case m.IRRPercent > discountPercent:
		irrClause = "IRR exceeds the discount rate"
	case m.IRRPercent < discountPercent:
		irrClause = "IRR is below the discount rate"
	}

	switch {
	case m.NPV > 0:
		cmp.Decision = DecisionAccept
		cmp.Recommendation = irrClause + " and NPV is positive: the project creates value."
	case m.NPV < 0:
		cmp.Decision = DecisionReject
		cmp.Recommendation = irrClause + " and NPV is negative: the project destroys value."
	default:
		cmp.Decision = DecisionUndetermined
		cmp.Recommendation = irrClause + " and NPV is zero: the project exactly earns the discount rate."
	}

	return cmp
}
