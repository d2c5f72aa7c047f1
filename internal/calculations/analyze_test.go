package calculations

import (
	"errors"
	"testing"
)

func TestAnalyze(t *testing.T) {
	schedule, err := NewSchedule(scenarioInitial, scenarioCashFlows)
	if err != nil {
		t.Fatalf("NewSchedule() error = %v", err)
	}

	result, err := Analyze(schedule, scenarioRate)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	m := result.Metrics
	if !m.IRRDetermined {
		t.Fatal("expected IRR to be determined")
	}
	assertClose(t, 44208.970429917565, m.NPV, 1e-6, "npv")
	assertClose(t, 19.711108390008214, m.IRRPercent, 1e-6, "irr")
	assertClose(t, 244208.97042991756, m.TotalPresentValue, 1e-6, "total present value")
	assertClose(t, 430379.648, m.TotalFutureValue, 1e-6, "total future value")
	if m.InitialInvestment != scenarioInitial || m.DiscountRate != scenarioRate {
		t.Errorf("inputs not echoed: %+v", m)
	}

	// npv = initial + Σ PV(t>0)
	assertClose(t, m.InitialInvestment+m.TotalPresentValue, m.NPV, 1e-6, "npv invariant")

	if len(result.Table) != 6 {
		t.Errorf("expected 6 table rows, got %d", len(result.Table))
	}
}

func TestAnalyzeUndeterminedIRR(t *testing.T) {
	schedule, err := NewSchedule(1000, []float64{100, 100})
	if err != nil {
		t.Fatalf("NewSchedule() error = %v", err)
	}

	result, err := Analyze(schedule, 0.1)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.Metrics.IRRDetermined {
		t.Error("expected IRR to be undetermined")
	}
	if result.Metrics.IRRPercent != 0 {
		t.Errorf("undetermined IRR must not carry a rate, got %f", result.Metrics.IRRPercent)
	}
}

func TestAnalyzeRejectsBadRate(t *testing.T) {
	schedule, _ := NewSchedule(-100, []float64{110})
	if _, err := Analyze(schedule, -1); err == nil {
		t.Error("expected error for discount rate -1")
	}
}

func TestAnalyzeNonFiniteResult(t *testing.T) {
	for _, rate := range []float64{1e200, -0.9999999999} {
		schedule, err := NewSchedule(-100, ones(50))
		if err != nil {
			t.Fatalf("NewSchedule() error = %v", err)
		}
		result, err := Analyze(schedule, rate)
		if !errors.Is(err, ErrNonFiniteResult) {
			t.Errorf("rate %g: expected ErrNonFiniteResult, got %v", rate, err)
		}
		if result != nil {
			t.Errorf("rate %g: expected no result", rate)
		}
	}
}

func TestScheduleIsImmutable(t *testing.T) {
	flows := []float64{1, 2, 3}
	schedule, err := NewSchedule(-5, flows)
	if err != nil {
		t.Fatalf("NewSchedule() error = %v", err)
	}

	flows[0] = 100
	got := schedule.CashFlows()
	if got[0] != 1 {
		t.Errorf("schedule changed with its input slice: %v", got)
	}

	got[1] = 200
	if schedule.CashFlows()[1] != 2 {
		t.Error("schedule changed through returned slice")
	}
	if schedule.Periods() != 3 {
		t.Errorf("expected 3 periods, got %d", schedule.Periods())
	}
}
