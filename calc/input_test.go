package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputComplete(t *testing.T) {
	t.Parallel()

	in, probs := ParseInput(FormFields{
		Direction:    "long",
		EntryPrice:   " 4500.00 ",
		ExitPrice:    "4510",
		Quantity:     "2",
		StopLoss:     "4495",
		TakeProfit:   "4520",
		MaxFavorable: "4512.5",
		MaxAdverse:   "4498.25",
	})

	require.Empty(t, probs)
	assert.Equal(t, Long, in.Direction)
	assert.Equal(t, 4500.0, in.EntryPrice)
	assert.Equal(t, 2.0, in.Quantity)
	require.NotNil(t, in.ExitPrice)
	assert.Equal(t, 4510.0, *in.ExitPrice)
	require.NotNil(t, in.StopLoss)
	assert.Equal(t, 4495.0, *in.StopLoss)
	require.NotNil(t, in.TakeProfit)
	assert.Equal(t, 4520.0, *in.TakeProfit)
	require.NotNil(t, in.MaxFavorable)
	assert.Equal(t, 4512.5, *in.MaxFavorable)
	require.NotNil(t, in.MaxAdverse)
	assert.Equal(t, 4498.25, *in.MaxAdverse)
}

func TestParseInputBlankOptionals(t *testing.T) {
	t.Parallel()

	in, probs := ParseInput(FormFields{EntryPrice: "4500", Quantity: "1"})

	require.Empty(t, probs)
	assert.Equal(t, Direction(""), in.Direction)
	assert.Nil(t, in.ExitPrice)
	assert.Nil(t, in.StopLoss)
	assert.Nil(t, in.TakeProfit)
	assert.Nil(t, in.MaxFavorable)
	assert.Nil(t, in.MaxAdverse)
}

func TestParseInputProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    FormFields
		want string
	}{
		{"entry_missing", FormFields{Quantity: "1"}, "Entry price is required"},
		{"entry_blank", FormFields{EntryPrice: "   ", Quantity: "1"}, "Entry price is required"},
		{"entry_garbage", FormFields{EntryPrice: "abc", Quantity: "1"}, "Entry price must be a number"},
		{"entry_nan", FormFields{EntryPrice: "NaN", Quantity: "1"}, "Entry price must be a number"},
		{"entry_inf", FormFields{EntryPrice: "+Inf", Quantity: "1"}, "Entry price must be a number"},
		{"quantity_missing", FormFields{EntryPrice: "4500"}, "Quantity is required"},
		{"quantity_garbage", FormFields{EntryPrice: "4500", Quantity: "two"}, "Quantity must be a number"},
		{"exit_garbage", FormFields{EntryPrice: "4500", Quantity: "1", ExitPrice: "n/a"}, "Exit price must be a number"},
		{"stop_garbage", FormFields{EntryPrice: "4500", Quantity: "1", StopLoss: "x"}, "Stop loss must be a number"},
		{"target_garbage", FormFields{EntryPrice: "4500", Quantity: "1", TakeProfit: "x"}, "Take profit must be a number"},
		{"mfe_garbage", FormFields{EntryPrice: "4500", Quantity: "1", MaxFavorable: "best"}, "Max favorable price must be a number"},
		{"mae_garbage", FormFields{EntryPrice: "4500", Quantity: "1", MaxAdverse: "worst"}, "Max adverse price must be a number"},
		{"direction_garbage", FormFields{EntryPrice: "4500", Quantity: "1", Direction: "buy"}, "Direction must be LONG or SHORT"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, probs := ParseInput(tt.f)
			require.NotEmpty(t, probs)

			var msgs []string
			for _, p := range probs {
				msgs = append(msgs, p.Msg)
				assert.Equal(t, CodeMissingField, p.Code)
			}
			assert.Contains(t, msgs, tt.want)
		})
	}
}

func TestParseInputCollectsEverything(t *testing.T) {
	t.Parallel()

	_, probs := ParseInput(FormFields{
		Direction: "buy",
		ExitPrice: "soon",
		StopLoss:  "low",
	})

	// direction, entry, quantity, exit, stop
	assert.Len(t, probs, 5)
}

func TestParseInputLeavesPositivityToCalculate(t *testing.T) {
	t.Parallel()

	in, probs := ParseInput(FormFields{Direction: "long", EntryPrice: "-5", ExitPrice: "10", Quantity: "0"})
	require.Empty(t, probs)
	assert.Equal(t, -5.0, in.EntryPrice)
	assert.Zero(t, in.Quantity)

	r := Calculate(in, mustSpec(t, "ES"))
	assert.False(t, r.Valid)
	assert.Contains(t, r.Errors(), "Entry price must be a positive number")
	assert.Contains(t, r.Errors(), "Quantity must be greater than zero")
}

func TestFormToResultFlow(t *testing.T) {
	t.Parallel()

	in, probs := ParseInput(FormFields{
		Direction:  "short",
		EntryPrice: "15000",
		ExitPrice:  "15020",
		Quantity:   "1",
	})
	require.Empty(t, probs)

	r := CalculateForSymbol(in, "NQ")
	require.True(t, r.Valid, r.Errors())
	assert.InDelta(t, -400.0, r.PnLGrossUSD, 1e-9)
	assert.InDelta(t, -402.10, r.PnLNetUSD, 1e-9)
}
