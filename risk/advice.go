package risk

import "fmt"

// Advice is a list of advisory notes about a sizing suggestion. Notes
// inform, they never block: the market's risk defaults are guidance,
// not limits.
type Advice []string

// Advise compares a suggestion against the market's risk defaults.
// Defaults left at zero in the table are skipped.
func Advise(in SizeInput, res SizeResult) Advice {
	var notes Advice
	def := in.Spec.Risk

	if res.Contracts == 0 {
		notes = append(notes, fmt.Sprintf("stop too wide: one %s contract risks $%.2f against a $%.2f budget",
			in.Spec.Symbol, res.RiskPerContractUSD, res.BudgetUSD))
	}
	if def.RiskPerTradePct > 0 && in.RiskPct > def.RiskPerTradePct {
		notes = append(notes, fmt.Sprintf("risking %.2f%% per trade, above the %.2f%% guideline for %s",
			in.RiskPct, def.RiskPerTradePct, in.Spec.Symbol))
	}
	if def.MaxPositionSize > 0 && float64(res.Contracts) > def.MaxPositionSize {
		notes = append(notes, fmt.Sprintf("%d contracts exceeds the %v contract guideline for %s",
			res.Contracts, def.MaxPositionSize, in.Spec.Symbol))
	}
	if def.StopLossPct > 0 && in.EntryPrice > 0 {
		if stopPct := res.StopPoints / in.EntryPrice * 100; stopPct > def.StopLossPct {
			notes = append(notes, fmt.Sprintf("stop sits %.2f%% from entry, wider than the %.2f%% guideline for %s",
				stopPct, def.StopLossPct, in.Spec.Symbol))
		}
	}
	return notes
}
