package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервера и сценария проекта
type Config struct {
	Port            int
	LogLevel        string
	OTELEndpoint    string
	OTELServiceName string

	// Сценарий, который показывает дашборд
	InitialInvestment float64
	DiscountRate      float64
	CashFlows         []float64

	// Ограничения для входных данных API
	MaxPeriods int
	MaxAmount  float64

	// Нарратив от генеративной модели
	GeminiAPIKey     string
	GeminiModel      string
	NarrativeTimeout time.Duration
}

// DefaultCashFlows возвращает денежные потоки сценария по умолчанию
func DefaultCashFlows() []float64 {
	return []float64{50000, 60000, 70000, 80000, 90000}
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cashFlows, err := getEnvFloatList("CASH_FLOWS", DefaultCashFlows())
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:              getEnvInt("PORT", 8000),
		LogLevel:          getEnvString("LOG_LEVEL", "INFO"),
		OTELEndpoint:      getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:   getEnvString("OTEL_SERVICE_NAME", "npv-dashboard"),
		InitialInvestment: getEnvFloat("INITIAL_INVESTMENT", -200000),
		DiscountRate:      getEnvFloat("DISCOUNT_RATE", 0.12),
		CashFlows:         cashFlows,
		MaxPeriods:        getEnvInt("MAX_PERIODS", 100),
		MaxAmount:         getEnvFloat("MAX_AMOUNT", 1e12),
		GeminiAPIKey:      getEnvString("GEMINI_API_KEY", ""),
		GeminiModel:       getEnvString("GEMINI_MODEL", "gemini-2.0-flash"),
		NarrativeTimeout:  getEnvDuration("NARRATIVE_TIMEOUT", 0),
	}

	return cfg, nil
}

// Addr возвращает адрес для http.Server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvFloatList читает список через запятую; битый список - ошибка, а не молчаливый дефолт
func getEnvFloatList(key string, defaultValue []float64) ([]float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	parts := strings.Split(value, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: неверное значение %q: %w", key, p, err)
		}
		out = append(out, f)
	}
	return out, nil
}
