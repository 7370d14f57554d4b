package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"tradelog/calc"
)

func TestWriteResultClosedWinner(t *testing.T) {
	t.Parallel()

	in := calc.Input{
		Direction:    calc.Long,
		EntryPrice:   5000,
		ExitPrice:    f64(5010),
		Quantity:     2,
		StopLoss:     f64(4995),
		TakeProfit:   f64(5015),
		MaxFavorable: f64(5015),
	}
	r := calc.CalculateForSymbol(in, "ES")

	var buf bytes.Buffer
	WriteResult(&buf, "es", r)
	out := buf.String()

	assert.Contains(t, out, " ES Trade Calculation\n")
	assert.Contains(t, out, "Direction:     LONG\n")
	assert.Contains(t, out, "Points:        10.00\n")
	assert.Contains(t, out, "Gross:         $1000.00\n")
	assert.Contains(t, out, "Commission:    $4.20\n")
	assert.Contains(t, out, "Net:           $995.80\n")
	assert.Contains(t, out, "Risk Points:   5.00\n")
	assert.Contains(t, out, "Reward Points: 15.00\n")
	assert.Contains(t, out, "Risk/Reward:   3.00\n")
	assert.Contains(t, out, "Efficiency:    66.7%\n")
	assert.Contains(t, out, "MFE / MAE:     15.00 / 0.00 points\n")
	assert.NotContains(t, out, "Problems")
	assert.NotContains(t, out, "Status:")
}

func TestWriteResultInferredDirection(t *testing.T) {
	t.Parallel()

	in := calc.Input{EntryPrice: 5000, ExitPrice: f64(5010), Quantity: 1}
	r := calc.CalculateForSymbol(in, "ES")

	var buf bytes.Buffer
	WriteResult(&buf, "ES", r)

	assert.Contains(t, buf.String(), "Direction:     LONG (inferred from prices)\n")
}

func TestWriteResultOpenPosition(t *testing.T) {
	t.Parallel()

	in := calc.Input{
		Direction:  calc.Long,
		EntryPrice: 5000,
		Quantity:   1,
		StopLoss:   f64(4995),
		TakeProfit: f64(5015),
	}
	r := calc.CalculateForSymbol(in, "ES")

	var buf bytes.Buffer
	WriteResult(&buf, "ES", r)
	out := buf.String()

	assert.Contains(t, out, "Status:        open\n")
	assert.NotContains(t, out, "P&L")
	assert.NotContains(t, out, "Net:")
	assert.Contains(t, out, "Risk/Reward:   3.00\n")
}

func TestWriteResultUnknownMarket(t *testing.T) {
	t.Parallel()

	in := calc.Input{Direction: calc.Long, EntryPrice: 100, ExitPrice: f64(104), Quantity: 1}
	r := calc.CalculateForSymbol(in, "ZZ")

	var buf bytes.Buffer
	WriteResult(&buf, "ZZ", r)
	out := buf.String()

	assert.Contains(t, out, "Points:        4.00\n")
	assert.Contains(t, out, "Dollars:       unavailable (unknown market)\n")
	assert.Contains(t, out, "- Unknown market\n")
	assert.NotContains(t, out, "Gross:")
}

func TestWriteResultListsProblems(t *testing.T) {
	t.Parallel()

	in := calc.Input{Direction: calc.Long, EntryPrice: -1, ExitPrice: f64(5010), Quantity: 0}
	r := calc.CalculateForSymbol(in, "ES")

	var buf bytes.Buffer
	WriteResult(&buf, "ES", r)
	out := buf.String()

	assert.Contains(t, out, "Problems\n")
	assert.Contains(t, out, "- Entry price must be a positive number\n")
	assert.Contains(t, out, "- Quantity must be greater than zero\n")
}
