package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Calculations счетчик расчетов проекта
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "npv_calculations_total",
			Help: "Количество расчетов NPV/IRR",
		},
		[]string{"source", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "npv_calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"source", "error_type"},
	)

	// APICalls счетчик вызовов HTTP API
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_calls_total",
			Help: "Вызовы HTTP API",
		},
		[]string{"endpoint", "status"},
	)

	// NarrativeRequests счетчик запросов к генеративной модели
	NarrativeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "narrative_requests_total",
			Help: "Запросы нарратива к генеративной модели",
		},
		[]string{"provider", "status"},
	)

	// NarrativeDuration время ответа генеративной модели
	NarrativeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "narrative_request_duration_seconds",
			Help:    "Длительность запроса нарратива",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
		[]string{"provider"},
	)
)
