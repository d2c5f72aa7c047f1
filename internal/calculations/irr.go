package calculations

import "math"

// Параметры поиска IRR
const (
	irrLowerBound    = -0.99
	irrUpperBound    = 10.0
	irrScanStep      = 0.01
	irrNPVTolerance  = 1e-7
	irrRateTolerance = 1e-12
	irrMaxIterations = 200
)

// InternalRateOfReturn находит ставку, при которой NPV = 0, и возвращает ее в процентах.
//
// Интервал [-0.99; 10] просматривается снизу вверх с шагом 0.01; первый
// подынтервал со сменой знака уточняется бисекцией. При нескольких корнях
// возвращается наименьший. Если смены знака нет - ErrIRRUndetermined.
func InternalRateOfReturn(initialInvestment float64, cashFlows []float64) (float64, error) {
	if err := checkFinite(initialInvestment, cashFlows); err != nil {
		return 0, err
	}
	if sameSign(initialInvestment, cashFlows) {
		return 0, ErrIRRUndetermined
	}

	lo := irrLowerBound
	fLo := npv(initialInvestment, cashFlows, lo)
	if fLo == 0 {
		return lo * 100, nil
	}

	steps := int(math.Round((irrUpperBound - irrLowerBound) / irrScanStep))
	for i := 1; i <= steps; i++ {
		hi := irrLowerBound + float64(i)*irrScanStep
		fHi := npv(initialInvestment, cashFlows, hi)
		if fHi == 0 {
			return hi * 100, nil
		}
		if (fLo < 0) != (fHi < 0) {
			return bisect(initialInvestment, cashFlows, lo, hi, fLo) * 100, nil
		}
		lo, fLo = hi, fHi
	}

	return 0, ErrIRRUndetermined
}

func bisect(initialInvestment float64, cashFlows []float64, lo, hi, fLo float64) float64 {
	mid := lo
	for i := 0; i < irrMaxIterations; i++ {
		mid = (lo + hi) / 2
		fMid := npv(initialInvestment, cashFlows, mid)
		if math.Abs(fMid) < irrNPVTolerance || hi-lo < irrRateTolerance {
			return mid
		}
		if (fMid < 0) == (fLo < 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return mid
}

// sameSign - все ненулевые суммы одного знака (нули не учитываются)
func sameSign(initialInvestment float64, cashFlows []float64) bool {
	pos, neg := false, false
	for _, v := range append([]float64{initialInvestment}, cashFlows...) {
		switch {
		case v > 0:
			pos = true
		case v < 0:
			neg = true
		}
	}
	return !(pos && neg)
}
