package calculations

import (
	"errors"
	"math"
	"testing"

	"github.com/cloud-ru/npv-dashboard/pkg/utils"
)

var (
	scenarioInitial   = -200000.0
	scenarioRate      = 0.12
	scenarioCashFlows = []float64{50000, 60000, 70000, 80000, 90000}
)

func assertClose(t *testing.T, want, got, tolerance float64, what string) {
	t.Helper()
	if !utils.AlmostEqual(want, got, tolerance) {
		t.Errorf("%s: expected %.6f, got %.6f (diff %.6f)", what, want, got, got-want)
	}
}

func ones(n int) []float64 {
	flows := make([]float64, n)
	for i := range flows {
		flows[i] = 1
	}
	return flows
}

func TestNetPresentValue(t *testing.T) {
	tests := []struct {
		name      string
		initial   float64
		cashFlows []float64
		rate      float64
		want      float64
		wantErr   error
	}{
		{
			name:      "single flow at period 1",
			initial:   0,
			cashFlows: []float64{1000},
			rate:      0.1,
			want:      1000 / 1.1,
		},
		{
			name:      "zero rate is plain sum",
			initial:   scenarioInitial,
			cashFlows: scenarioCashFlows,
			rate:      0,
			want:      150000,
		},
		{
			name:      "fixed scenario",
			initial:   scenarioInitial,
			cashFlows: scenarioCashFlows,
			rate:      scenarioRate,
			want:      44208.970429917565,
		},
		{
			name:      "no future flows",
			initial:   -500,
			cashFlows: nil,
			rate:      0.05,
			want:      -500,
		},
		{
			name:      "rate of exactly -1 rejected",
			initial:   -100,
			cashFlows: []float64{110},
			rate:      -1,
			wantErr:   ErrInvalidDiscountRate,
		},
		{
			name:      "rate below -1 rejected",
			initial:   -100,
			cashFlows: []float64{110},
			rate:      -1.5,
			wantErr:   ErrInvalidDiscountRate,
		},
		{
			name:      "NaN cash flow rejected",
			initial:   -100,
			cashFlows: []float64{math.NaN()},
			rate:      0.1,
			wantErr:   ErrNonFiniteInput,
		},
		{
			name:      "infinite rate rejected",
			initial:   -100,
			cashFlows: []float64{110},
			rate:      math.Inf(1),
			wantErr:   ErrNonFiniteInput,
		},
		{
			name:      "discount factor underflow near -1",
			initial:   -100,
			cashFlows: ones(50),
			rate:      -0.9999999999,
			wantErr:   ErrNonFiniteResult,
		},
		{
			name:      "huge flows overflow the sum",
			initial:   0,
			cashFlows: []float64{math.MaxFloat64, math.MaxFloat64},
			rate:      0,
			wantErr:   ErrNonFiniteResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NetPresentValue(tt.initial, tt.cashFlows, tt.rate)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NetPresentValue() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NetPresentValue() error = %v", err)
			}
			assertClose(t, tt.want, got, 1e-6, "npv")
		})
	}
}

func TestNetPresentValueScenarioIsPositive(t *testing.T) {
	got, err := NetPresentValue(scenarioInitial, scenarioCashFlows, scenarioRate)
	if err != nil {
		t.Fatalf("NetPresentValue() error = %v", err)
	}
	if got <= 0 {
		t.Errorf("expected positive NPV, got %f", got)
	}
}
