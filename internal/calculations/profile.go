package calculations

// DefaultProfileRates возвращает ставки 0%..30% с шагом 2% для графика NPV
func DefaultProfileRates() []float64 {
	rates := make([]float64, 0, 16)
	for p := 0; p <= 30; p += 2 {
		rates = append(rates, float64(p)/100)
	}
	return rates
}

// NPVProfile рассчитывает NPV при каждой из ставок
func NPVProfile(initialInvestment float64, cashFlows []float64, rates []float64) ([]ProfilePoint, error) {
	points := make([]ProfilePoint, 0, len(rates))
	for _, r := range rates {
		v, err := NetPresentValue(initialInvestment, cashFlows, r)
		if err != nil {
			return nil, err
		}
		points = append(points, ProfilePoint{RatePercent: r * 100, NPV: v})
	}
	return points, nil
}
