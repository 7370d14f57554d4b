// Package risk turns an account's risk budget into a whole contract
// count for a planned trade, and annotates the suggestion against the
// market's advisory defaults.
package risk

import (
	"fmt"
	"math"

	"tradelog/market"
)

// SizeInput describes a planned trade for sizing. RiskPct is the
// percent of equity to put at risk, 1 = 1%.
type SizeInput struct {
	Equity     float64
	RiskPct    float64
	EntryPrice float64
	StopPrice  float64
	Spec       market.Spec
}

// SizeResult is a sizing suggestion. Contracts is floored, never
// rounded up, so the suggested position cannot exceed the budget.
// Contracts of zero means the stop is too wide for the budget.
type SizeResult struct {
	Contracts          int
	StopPoints         float64
	RiskPerContractUSD float64
	BudgetUSD          float64
	RiskUSD            float64
}

// Suggest computes the largest whole contract count whose loss at the
// stop stays inside the risk budget.
func Suggest(in SizeInput) (SizeResult, error) {
	if err := in.Spec.Valid(); err != nil {
		return SizeResult{}, fmt.Errorf("sizing: %w", err)
	}
	if in.Equity <= 0 {
		return SizeResult{}, fmt.Errorf("sizing: equity must be positive, got %v", in.Equity)
	}
	if in.RiskPct <= 0 || in.RiskPct > 100 {
		return SizeResult{}, fmt.Errorf("sizing: risk percent must be in (0, 100], got %v", in.RiskPct)
	}
	if in.EntryPrice <= 0 {
		return SizeResult{}, fmt.Errorf("sizing: entry price must be positive, got %v", in.EntryPrice)
	}
	if in.StopPrice <= 0 {
		return SizeResult{}, fmt.Errorf("sizing: stop price must be positive, got %v", in.StopPrice)
	}

	stopPoints := math.Abs(in.EntryPrice - in.StopPrice)
	if stopPoints == 0 {
		return SizeResult{}, fmt.Errorf("sizing: stop equals entry at %v, no distance to size against", in.EntryPrice)
	}

	res := SizeResult{
		StopPoints:         stopPoints,
		RiskPerContractUSD: stopPoints * in.Spec.PointValue,
		BudgetUSD:          in.Equity * in.RiskPct / 100,
	}
	res.Contracts = int(res.BudgetUSD / res.RiskPerContractUSD)
	res.RiskUSD = float64(res.Contracts) * res.RiskPerContractUSD
	return res, nil
}
