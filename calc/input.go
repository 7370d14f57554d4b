package calc

import (
	"math"
	"strconv"
	"strings"
)

// Input is one trade as the calculator sees it: typed, per-call,
// owned by the caller. Optional fields are nil when the user left
// them blank.
type Input struct {
	Direction  Direction // empty means infer from prices
	EntryPrice float64
	ExitPrice  *float64 // nil while the position is open
	Quantity   float64  // contracts
	StopLoss   *float64
	TakeProfit *float64

	// Intraday excursion prices: the best and worst prices touched
	// while the position was on.
	MaxFavorable *float64
	MaxAdverse   *float64
}

// FormFields is the raw string shape of a trade-entry form. ParseInput
// is the only place these strings are coerced to numbers.
type FormFields struct {
	Direction    string
	EntryPrice   string
	ExitPrice    string
	Quantity     string
	StopLoss     string
	TakeProfit   string
	MaxFavorable string
	MaxAdverse   string
}

// ParseInput converts raw form strings into a typed Input. Blank
// optional fields become nil; blank or unparseable required fields and
// unparseable optional fields each contribute a problem. Positivity is
// not checked here, Calculate does that. NaN and infinities never pass
// through.
func ParseInput(f FormFields) (Input, []Problem) {
	var (
		in    Input
		probs []Problem
	)

	dir, err := ParseDirection(f.Direction)
	if err != nil {
		probs = append(probs, Problem{CodeMissingField, "Direction must be LONG or SHORT"})
	}
	in.Direction = dir

	entry, ok, p := parseNumber("Entry price", f.EntryPrice)
	switch {
	case p != nil:
		probs = append(probs, *p)
	case !ok:
		probs = append(probs, Problem{CodeMissingField, "Entry price is required"})
	}
	in.EntryPrice = entry

	qty, ok, p := parseNumber("Quantity", f.Quantity)
	switch {
	case p != nil:
		probs = append(probs, *p)
	case !ok:
		probs = append(probs, Problem{CodeMissingField, "Quantity is required"})
	}
	in.Quantity = qty

	in.ExitPrice, probs = parseOptional("Exit price", f.ExitPrice, probs)
	in.StopLoss, probs = parseOptional("Stop loss", f.StopLoss, probs)
	in.TakeProfit, probs = parseOptional("Take profit", f.TakeProfit, probs)
	in.MaxFavorable, probs = parseOptional("Max favorable price", f.MaxFavorable, probs)
	in.MaxAdverse, probs = parseOptional("Max adverse price", f.MaxAdverse, probs)

	return in, probs
}

// parseNumber parses one field. It reports (value, present, problem):
// blank input is absent without a problem, unparseable or non-finite
// input is absent with a problem.
func parseNumber(field, raw string) (float64, bool, *Problem) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, &Problem{CodeMissingField, field + " must be a number"}
	}
	return v, true, nil
}

func parseOptional(field, raw string, probs []Problem) (*float64, []Problem) {
	v, ok, p := parseNumber(field, raw)
	if p != nil {
		return nil, append(probs, *p)
	}
	if !ok {
		return nil, probs
	}
	return &v, probs
}
