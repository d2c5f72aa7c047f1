package calculations

import "errors"

var (
	// ErrInvalidDiscountRate - ставка дисконтирования ≤ -1, (1+r)^t не определено
	ErrInvalidDiscountRate = errors.New("discount rate must be greater than -1")
	// ErrNonFiniteInput - во входных данных NaN или ±Inf
	ErrNonFiniteInput = errors.New("input is not a finite number")
	// ErrNonFiniteResult - расчет ушел в ±Inf/NaN при конечных входных данных
	ErrNonFiniteResult = errors.New("result is not a finite number")
	// ErrIRRUndetermined - NPV не меняет знак на интервале поиска
	ErrIRRUndetermined = errors.New("internal rate of return is undetermined")
)
