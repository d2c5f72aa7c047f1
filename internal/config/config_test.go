package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "INITIAL_INVESTMENT", "DISCOUNT_RATE", "CASH_FLOWS", "NARRATIVE_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Port)
	}
	if cfg.InitialInvestment != -200000 {
		t.Errorf("expected initial investment -200000, got %f", cfg.InitialInvestment)
	}
	if cfg.DiscountRate != 0.12 {
		t.Errorf("expected discount rate 0.12, got %f", cfg.DiscountRate)
	}
	if len(cfg.CashFlows) != 5 || cfg.CashFlows[4] != 90000 {
		t.Errorf("unexpected default cash flows %v", cfg.CashFlows)
	}
	if cfg.NarrativeTimeout != 0 {
		t.Errorf("expected no narrative timeout, got %s", cfg.NarrativeTimeout)
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("expected addr :8000, got %s", cfg.Addr())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DISCOUNT_RATE", "0.08")
	t.Setenv("CASH_FLOWS", "100, 200 ,300")
	t.Setenv("NARRATIVE_TIMEOUT", "30s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.DiscountRate != 0.08 {
		t.Errorf("expected discount rate 0.08, got %f", cfg.DiscountRate)
	}
	want := []float64{100, 200, 300}
	if len(cfg.CashFlows) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.CashFlows)
	}
	for i := range want {
		if cfg.CashFlows[i] != want[i] {
			t.Errorf("cash flow %d: expected %f, got %f", i, want[i], cfg.CashFlows[i])
		}
	}
	if cfg.NarrativeTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.NarrativeTimeout)
	}
}

func TestLoadConfigBadCashFlows(t *testing.T) {
	t.Setenv("CASH_FLOWS", "100,abc")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for malformed CASH_FLOWS")
	}
}
