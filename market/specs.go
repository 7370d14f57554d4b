package market

import "strings"

// specs is the ordered contract table. Keep CME index futures first,
// then their micros, then energy, metals and rates.
var specs = []Spec{
	{
		Symbol:     "ES",
		Name:       "E-mini S&P 500",
		TickSize:   0.25,
		PointValue: 50,
		Precision:  2,
		Commission: Commission{Amount: 2.10, Kind: PerContract},
		Risk:       RiskDefaults{RiskPerTradePct: 1, StopLossPct: 0.5, TakeProfitPct: 1, MaxPositionSize: 10},
	},
	{
		Symbol:     "NQ",
		Name:       "E-mini Nasdaq-100",
		TickSize:   0.25,
		PointValue: 20,
		Precision:  2,
		Commission: Commission{Amount: 2.10, Kind: PerContract},
		Risk:       RiskDefaults{RiskPerTradePct: 1, StopLossPct: 0.5, TakeProfitPct: 1, MaxPositionSize: 10},
	},
	{
		Symbol:     "YM",
		Name:       "E-mini Dow",
		TickSize:   1,
		PointValue: 5,
		Precision:  0,
		Commission: Commission{Amount: 2.10, Kind: PerContract},
		Risk:       RiskDefaults{RiskPerTradePct: 1, StopLossPct: 0.5, TakeProfitPct: 1, MaxPositionSize: 10},
	},
	{
		Symbol:     "RTY",
		Name:       "E-mini Russell 2000",
		TickSize:   0.1,
		PointValue: 50,
		Precision:  1,
		Commission: Commission{Amount: 2.10, Kind: PerContract},
		Risk:       RiskDefaults{RiskPerTradePct: 1, StopLossPct: 0.5, TakeProfitPct: 1, MaxPositionSize: 10},
	},
	{
		Symbol:     "MES",
		Name:       "Micro E-mini S&P 500",
		TickSize:   0.25,
		PointValue: 5,
		Precision:  2,
		Commission: Commission{Amount: 0.62, Kind: PerContract},
		Risk:       RiskDefaults{RiskPerTradePct: 1, StopLossPct: 0.5, TakeProfitPct: 1, MaxPositionSize: 50},
	},
	{
		Symbol:     "MNQ",
		Name:       "Micro E-mini Nasdaq-100",
		TickSize:   0.25,
		PointValue: 2,
		Precision:  2,
		Commission: Commission{Amount: 0.62, Kind: PerContract},
		Risk:       RiskDefaults{RiskPerTradePct: 1, StopLossPct: 0.5, TakeProfitPct: 1, MaxPositionSize: 50},
	},
	{
		Symbol:     "CL",
		Name:       "Crude Oil",
		TickSize:   0.01,
		PointValue: 1000,
		Precision:  2,
		Commission: Commission{Amount: 2.50, Kind: PerContract},
		Risk:       RiskDefaults{RiskPerTradePct: 1, StopLossPct: 1, TakeProfitPct: 2, MaxPositionSize: 5},
	},
	{
		Symbol:     "GC",
		Name:       "Gold",
		TickSize:   0.1,
		PointValue: 100,
		Precision:  1,
		Commission: Commission{Amount: 2.50, Kind: PerContract},
		Risk:       RiskDefaults{RiskPerTradePct: 1, StopLossPct: 0.75, TakeProfitPct: 1.5, MaxPositionSize: 5},
	},
	{
		Symbol:     "SI",
		Name:       "Silver",
		TickSize:   0.005,
		PointValue: 5000,
		Precision:  3,
		Commission: Commission{Amount: 2.50, Kind: PerContract},
		Risk:       RiskDefaults{RiskPerTradePct: 1, StopLossPct: 1, TakeProfitPct: 2, MaxPositionSize: 3},
	},
	{
		Symbol:     "ZB",
		Name:       "30-Year T-Bond",
		TickSize:   0.03125,
		PointValue: 1000,
		Precision:  5,
		Commission: Commission{Amount: 2.10, Kind: PerContract},
		Risk:       RiskDefaults{RiskPerTradePct: 1, StopLossPct: 0.5, TakeProfitPct: 1, MaxPositionSize: 5},
	},
}

var bySymbol = func() map[string]Spec {
	m := make(map[string]Spec, len(specs))
	for _, s := range specs {
		m[strings.ToUpper(s.Symbol)] = s
	}
	return m
}()

// Lookup finds the spec for a symbol. Matching is case insensitive and
// ignores surrounding whitespace. The second return is false when the
// symbol is not in the table.
func Lookup(symbol string) (Spec, bool) {
	s, ok := bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	return s, ok
}

// List returns every spec in table order. The slice is a copy.
func List() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// Symbols returns the supported symbols in table order.
func Symbols() []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.Symbol
	}
	return out
}
