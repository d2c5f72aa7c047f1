package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-ru/npv-dashboard/internal/calculations"
	"github.com/cloud-ru/npv-dashboard/internal/config"
	"github.com/cloud-ru/npv-dashboard/internal/format"
)

func TestScenario(t *testing.T) {
	c := &config.Config{
		InitialInvestment: -200000,
		DiscountRate:      0.12,
		CashFlows:         config.DefaultCashFlows(),
		MaxPeriods:        10,
		MaxAmount:         1e9,
	}
	s, err := scenario(c)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Periods())

	c.DiscountRate = -1
	_, err = scenario(c)
	assert.Error(t, err)
}

func TestPrintAnalysis(t *testing.T) {
	s, err := calculations.NewSchedule(-200000, config.DefaultCashFlows())
	require.NoError(t, err)
	r, err := calculations.Analyze(s, 0.12)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printAnalysis(&buf, r, format.Default()))
	out := buf.String()

	assert.Contains(t, out, "$44,209")
	assert.Contains(t, out, "19.71%")
	assert.Contains(t, out, "accept")
	assert.Contains(t, out, "-$352,468")
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("DEBUG", false)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))

	l, err = newLogger("nonsense", false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))

	l, err = newLogger("error", true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))
}
