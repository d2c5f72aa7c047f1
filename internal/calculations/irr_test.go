package calculations

import (
	"errors"
	"testing"
)

func TestInternalRateOfReturn(t *testing.T) {
	tests := []struct {
		name      string
		initial   float64
		cashFlows []float64
		wantPct   float64
		tolerance float64
	}{
		{
			name:      "one period at 10%",
			initial:   -100,
			cashFlows: []float64{110},
			wantPct:   10,
			tolerance: 1e-6,
		},
		{
			name:      "fixed scenario",
			initial:   scenarioInitial,
			cashFlows: scenarioCashFlows,
			wantPct:   19.711108390008214,
			tolerance: 1e-6,
		},
		{
			name:      "break even is zero rate",
			initial:   -300,
			cashFlows: []float64{100, 100, 100},
			wantPct:   0,
			tolerance: 1e-6,
		},
		{
			name:      "negative return",
			initial:   -100,
			cashFlows: []float64{50},
			wantPct:   -50,
			tolerance: 1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InternalRateOfReturn(tt.initial, tt.cashFlows)
			if err != nil {
				t.Fatalf("InternalRateOfReturn() error = %v", err)
			}
			assertClose(t, tt.wantPct, got, tt.tolerance, "irr percent")
		})
	}
}

func TestInternalRateOfReturnZeroesNPV(t *testing.T) {
	irr, err := InternalRateOfReturn(scenarioInitial, scenarioCashFlows)
	if err != nil {
		t.Fatalf("InternalRateOfReturn() error = %v", err)
	}
	if irr <= 12 {
		t.Errorf("expected IRR above 12%%, got %f", irr)
	}

	residual, err := NetPresentValue(scenarioInitial, scenarioCashFlows, irr/100)
	if err != nil {
		t.Fatalf("NetPresentValue() error = %v", err)
	}
	assertClose(t, 0, residual, 1e-3, "npv at irr")
}

func TestInternalRateOfReturnUndetermined(t *testing.T) {
	tests := []struct {
		name      string
		initial   float64
		cashFlows []float64
	}{
		{name: "all positive", initial: 100, cashFlows: []float64{10, 20, 30}},
		{name: "all negative", initial: -100, cashFlows: []float64{-10, -20}},
		{name: "no future flows", initial: -100, cashFlows: nil},
		{name: "only zeros after outlay", initial: -100, cashFlows: []float64{0, 0}},
		{name: "root beyond search bound", initial: -1, cashFlows: []float64{1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InternalRateOfReturn(tt.initial, tt.cashFlows)
			if !errors.Is(err, ErrIRRUndetermined) {
				t.Fatalf("expected ErrIRRUndetermined, got rate %f err %v", got, err)
			}
		})
	}
}

func TestInternalRateOfReturnFirstRoot(t *testing.T) {
	// NPV(r) = -1 + 2.3/(1+r) - 1.32/(1+r)^2 имеет корни 10% и 20%
	got, err := InternalRateOfReturn(-1, []float64{2.3, -1.32})
	if err != nil {
		t.Fatalf("InternalRateOfReturn() error = %v", err)
	}
	assertClose(t, 10, got, 1e-3, "lowest root")
}
