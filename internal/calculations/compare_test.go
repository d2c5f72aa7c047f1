package calculations

import (
	"strings"
	"testing"
)

func TestCompareRates(t *testing.T) {
	tests := []struct {
		name         string
		metrics      ProjectMetrics
		wantDecision Decision
		wantSpread   float64
		wantPrefix   string
	}{
		{
			name:         "value creating project",
			metrics:      ProjectMetrics{NPV: 44208.97, IRRPercent: 19.7111, IRRDetermined: true, DiscountRate: 0.12},
			wantDecision: DecisionAccept,
			wantSpread:   7.71,
			wantPrefix:   "IRR exceeds the discount rate and NPV is positive",
		},
		{
			name:         "value destroying project",
			metrics:      ProjectMetrics{NPV: -500, IRRPercent: 8, IRRDetermined: true, DiscountRate: 0.12},
			wantDecision: DecisionReject,
			wantSpread:   -4,
			wantPrefix:   "IRR is below the discount rate and NPV is negative",
		},
		{
			// вложение -> приток -> крупный отток: NPV > 0 при IRR ниже ставки
			name:         "non-conventional flows with positive npv and irr below rate",
			metrics:      ProjectMetrics{NPV: 1200, IRRPercent: 5, IRRDetermined: true, DiscountRate: 0.12},
			wantDecision: DecisionAccept,
			wantSpread:   -7,
			wantPrefix:   "IRR is below the discount rate and NPV is positive",
		},
		{
			name:         "non-conventional flows with negative npv and irr above rate",
			metrics:      ProjectMetrics{NPV: -300, IRRPercent: 25, IRRDetermined: true, DiscountRate: 0.12},
			wantDecision: DecisionReject,
			wantSpread:   13,
			wantPrefix:   "IRR exceeds the discount rate and NPV is negative",
		},
		{
			name:         "undetermined irr with negative npv",
			metrics:      ProjectMetrics{NPV: -100, IRRDetermined: false, DiscountRate: 0.1},
			wantDecision: DecisionReject,
			wantSpread:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareRates(tt.metrics)
			if got.Decision != tt.wantDecision {
				t.Errorf("expected decision %s, got %s", tt.wantDecision, got.Decision)
			}
			assertClose(t, tt.wantSpread, got.SpreadPercent, 1e-9, "spread")
			if got.Recommendation == "" {
				t.Error("recommendation should not be empty")
			}
			if tt.wantPrefix != "" && !strings.HasPrefix(got.Recommendation, tt.wantPrefix) {
				t.Errorf("recommendation %q should start with %q", got.Recommendation, tt.wantPrefix)
			}
		})
	}
}

func TestNPVProfile(t *testing.T) {
	points, err := NPVProfile(scenarioInitial, scenarioCashFlows, DefaultProfileRates())
	if err != nil {
		t.Fatalf("NPVProfile() error = %v", err)
	}
	if len(points) != 16 {
		t.Fatalf("expected 16 points, got %d", len(points))
	}
	assertClose(t, 150000, points[0].NPV, 1e-6, "npv at 0%")
	for i := 1; i < len(points); i++ {
		if points[i].NPV >= points[i-1].NPV {
			t.Errorf("npv profile should fall as rate rises: %v then %v", points[i-1], points[i])
		}
	}
	if points[len(points)-1].NPV >= 0 {
		t.Error("npv at 30% should be negative for the scenario")
	}

	if _, err := NPVProfile(-1, []float64{2}, []float64{-1}); err == nil {
		t.Error("expected error for rate -1")
	}
}
