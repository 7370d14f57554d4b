// Package calc is the journal's P&L and risk engine. All arithmetic
// lives here, in one place, so form previews, summary cards, reports
// and the CLI can never drift apart on rounding or edge cases. The
// engine is a pure function of its inputs and the market table; it
// performs no I/O and keeps no state between calls.
package calc

import (
	"fmt"
	"math"

	"tradelog/market"
)

// Result is the derived view of one trade. It is recomputed on demand
// and never stored; the raw Input fields are the only authoritative
// record. All numeric fields carry full float64 precision, use Rounded
// for display values.
type Result struct {
	Direction Direction
	Source    Source
	Open      bool // no exit price: dollar fields are not computed

	PnLPoints     float64
	PnLGrossUSD   float64
	CommissionUSD float64
	PnLNetUSD     float64

	// Signed distances from entry to stop and target. Positive means
	// the level sits on the correct side for the direction.
	RiskPoints   float64
	RewardPoints float64
	RiskReward   float64

	// Share of the best available move that the exit captured, 0-100.
	Efficiency float64

	// Direction-adjusted excursion distances: how far price ran in the
	// trade's favor and how much heat it took. Zero when the excursion
	// prices were not recorded.
	FavorablePoints float64
	AdversePoints   float64

	// Price decimals used by Rounded, taken from the market spec.
	Precision int

	Valid    bool
	Problems []Problem
}

// Calculate computes the result for one trade against a known market
// spec. Passing an invalid spec breaks the caller's contract and
// panics; user-input problems never panic, they come back collected in
// Result.Problems alongside whatever partial fields were computable.
func Calculate(in Input, spec market.Spec) Result {
	if err := spec.Valid(); err != nil {
		panic(fmt.Sprintf("calc: %v", err))
	}
	return calculate(in, &spec)
}

// CalculateForSymbol resolves the market table first. An unknown symbol
// yields an unknown-market problem and a points-only partial result, so
// callers can still render a price-based view.
func CalculateForSymbol(in Input, symbol string) Result {
	if spec, ok := market.Lookup(symbol); ok {
		return calculate(in, &spec)
	}
	return calculate(in, nil)
}

func calculate(in Input, spec *market.Spec) Result {
	var probs []Problem

	if spec == nil {
		probs = append(probs, Problem{CodeUnknownMarket, "Unknown market"})
	}

	var (
		dir      Direction
		src      Source
		dirKnown bool
	)
	switch {
	case in.Direction.Valid():
		dir, src = in.Direction, Explicit
		dirKnown = true
	case in.Direction != "":
		probs = append(probs, Problem{CodeMissingField, "Direction must be LONG or SHORT"})
	case in.ExitPrice != nil:
		dir, src = Resolve("", in.EntryPrice, *in.ExitPrice)
		dirKnown = true
	default:
		probs = append(probs, Problem{CodeMissingField, "Direction is required while the position is open"})
	}

	entryOK := posFinite(in.EntryPrice)
	if !entryOK {
		probs = append(probs, Problem{CodeNonPositive, "Entry price must be a positive number"})
	}

	exitOK := false
	if in.ExitPrice != nil {
		exitOK = posFinite(*in.ExitPrice)
		if !exitOK {
			probs = append(probs, Problem{CodeNonPositive, "Exit price must be a positive number"})
		}
	}

	qtyOK := posFinite(in.Quantity)
	if !qtyOK {
		probs = append(probs, Problem{CodeNonPositive, "Quantity must be greater than zero"})
	}

	stopOK := false
	if in.StopLoss != nil {
		stopOK = posFinite(*in.StopLoss)
		if !stopOK {
			probs = append(probs, Problem{CodeNonPositive, "Stop loss must be a positive number"})
		}
	}
	tpOK := false
	if in.TakeProfit != nil {
		tpOK = posFinite(*in.TakeProfit)
		if !tpOK {
			probs = append(probs, Problem{CodeNonPositive, "Take profit must be a positive number"})
		}
	}

	// Placement checks. A misplaced stop or target is reported but does
	// not block the price fields that don't depend on it.
	if dirKnown && entryOK {
		if stopOK {
			switch {
			case dir == Long && *in.StopLoss >= in.EntryPrice:
				probs = append(probs, Problem{CodeDirectionalInconsistency, "stop loss must be below entry for long trades"})
			case dir == Short && *in.StopLoss <= in.EntryPrice:
				probs = append(probs, Problem{CodeDirectionalInconsistency, "stop loss must be above entry for short trades"})
			}
		}
		if tpOK {
			switch {
			case dir == Long && *in.TakeProfit <= in.EntryPrice:
				probs = append(probs, Problem{CodeDirectionalInconsistency, "take profit must be above entry for long trades"})
			case dir == Short && *in.TakeProfit >= in.EntryPrice:
				probs = append(probs, Problem{CodeDirectionalInconsistency, "take profit must be below entry for short trades"})
			}
		}
	}

	r := Result{
		Direction: dir,
		Source:    src,
		Open:      in.ExitPrice == nil,
		Precision: 2,
		Problems:  probs,
	}
	if spec != nil {
		r.Precision = spec.Precision
	}

	sign := dir.Sign()

	// Risk, reward and excursion distances need only the entry and the
	// direction, so they stay available on open positions.
	if dirKnown && entryOK {
		if stopOK {
			r.RiskPoints = sign * (in.EntryPrice - *in.StopLoss)
		}
		if tpOK {
			r.RewardPoints = sign * (*in.TakeProfit - in.EntryPrice)
		}
		if r.RiskPoints > 0 && r.RewardPoints > 0 {
			r.RiskReward = r.RewardPoints / r.RiskPoints
		}
		if mfe, ok := usable(in.MaxFavorable); ok {
			r.FavorablePoints = sign * (mfe - in.EntryPrice)
		}
		if mae, ok := usable(in.MaxAdverse); ok {
			r.AdversePoints = sign * (in.EntryPrice - mae)
		}
	}

	// P&L needs the whole core: entry, exit, quantity, direction.
	if dirKnown && entryOK && exitOK && qtyOK {
		r.PnLPoints = sign * (*in.ExitPrice - in.EntryPrice)
		if spec != nil {
			r.PnLGrossUSD = r.PnLPoints * spec.PointValue * in.Quantity
			r.CommissionUSD = commission(spec.Commission, in.Quantity, r.PnLGrossUSD)
			r.PnLNetUSD = r.PnLGrossUSD - r.CommissionUSD
		}

		if mfe, ok := usable(in.MaxFavorable); ok {
			if maxMove := sign * (mfe - in.EntryPrice); maxMove > 0 {
				r.Efficiency = clamp(r.PnLPoints/maxMove*100, 0, 100)
			}
		}
	}

	r.Valid = len(r.Problems) == 0
	return r
}

// commission applies the market's default commission. PerContract and
// PerShare both charge against quantity since the journal keeps no
// separate share count; Percentage charges against the absolute gross.
func commission(c market.Commission, qty, grossUSD float64) float64 {
	if c.Kind == market.Percentage {
		return c.Amount / 100 * math.Abs(grossUSD)
	}
	return c.Amount * qty
}

// Rounded returns the display copy of the result: money at 2 decimals,
// point distances at the market precision, risk-reward at 2, efficiency
// at 1. Rounding happens only at this boundary, never inside the math.
func (r Result) Rounded() Result {
	out := r
	out.PnLPoints = roundTo(r.PnLPoints, r.Precision)
	out.RiskPoints = roundTo(r.RiskPoints, r.Precision)
	out.RewardPoints = roundTo(r.RewardPoints, r.Precision)
	out.FavorablePoints = roundTo(r.FavorablePoints, r.Precision)
	out.AdversePoints = roundTo(r.AdversePoints, r.Precision)
	out.PnLGrossUSD = roundTo(r.PnLGrossUSD, 2)
	out.CommissionUSD = roundTo(r.CommissionUSD, 2)
	out.PnLNetUSD = roundTo(r.PnLNetUSD, 2)
	out.RiskReward = roundTo(r.RiskReward, 2)
	out.Efficiency = roundTo(r.Efficiency, 1)
	return out
}

// Errors flattens the problem list into display strings.
func (r Result) Errors() []string {
	if len(r.Problems) == 0 {
		return nil
	}
	out := make([]string, len(r.Problems))
	for i, p := range r.Problems {
		out[i] = p.Msg
	}
	return out
}

// HasProblem reports whether any collected problem carries the code.
func (r Result) HasProblem(code Code) bool {
	for _, p := range r.Problems {
		if p.Code == code {
			return true
		}
	}
	return false
}

func posFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// usable unwraps an optional excursion price. Prices that are absent,
// non-positive or non-finite are treated as not recorded.
func usable(p *float64) (float64, bool) {
	if p == nil || !posFinite(*p) {
		return 0, false
	}
	return *p, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
