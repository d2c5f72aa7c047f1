package calculations

// PeriodRecord представляет одну строку таблицы периодов
type PeriodRecord struct {
	Period       int     `json:"period"`
	CashFlow     float64 `json:"cash_flow"`
	PresentValue float64 `json:"present_value"`
	FutureValue  float64 `json:"future_value"`
}

// ProjectMetrics представляет сводные показатели проекта.
// TotalPresentValue и TotalFutureValue считаются только по периодам 1..N,
// первоначальные инвестиции (период 0) в них не входят.
type ProjectMetrics struct {
	NPV               float64 `json:"npv"`
	IRRPercent        float64 `json:"irr"`
	IRRDetermined     bool    `json:"irr_determined"`
	TotalPresentValue float64 `json:"total_present_value"`
	TotalFutureValue  float64 `json:"total_future_value"`
	InitialInvestment float64 `json:"initial_investment"`
	DiscountRate      float64 `json:"discount_rate"`
}

// AnalysisResult представляет результат расчета проекта
type AnalysisResult struct {
	Metrics ProjectMetrics `json:"metrics"`
	Table   []PeriodRecord `json:"table"`
}

// ProfilePoint представляет NPV при одной ставке дисконтирования
type ProfilePoint struct {
	RatePercent float64 `json:"rate_percent"`
	NPV         float64 `json:"npv"`
}

// Decision - вывод по проекту из сравнения ставок
type Decision string

const (
	DecisionAccept       Decision = "accept"
	DecisionReject       Decision = "reject"
	DecisionUndetermined Decision = "undetermined"
)

// RateComparison представляет сравнение IRR со ставкой дисконтирования
type RateComparison struct {
	DiscountRatePercent float64  `json:"discount_rate_percent"`
	IRRPercent          float64  `json:"irr_percent"`
	SpreadPercent       float64  `json:"spread_percent"`
	IRRDetermined       bool     `json:"irr_determined"`
	Decision            Decision `json:"decision"`
	Recommendation      string   `json:"recommendation"`
}
