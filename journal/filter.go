package journal

import (
	"sort"
	"strings"
	"time"

	"tradelog/calc"
)

// Filter selects trades. Zero-value fields match everything, so the
// empty Filter passes the whole journal through.
type Filter struct {
	Symbols    []string
	Direction  calc.Direction
	OnlyOpen   bool
	OnlyClosed bool
	From, To   time.Time // inclusive window on the open time
	Tags       []string  // a trade matches when it carries any of these
}

// Match reports whether one trade passes the filter.
func (f Filter) Match(t Trade) bool {
	if len(f.Symbols) > 0 && !containsFold(f.Symbols, t.Symbol) {
		return false
	}
	if f.Direction.Valid() && t.Direction != f.Direction {
		return false
	}
	if f.OnlyOpen && !t.Open() {
		return false
	}
	if f.OnlyClosed && t.Open() {
		return false
	}
	if !f.From.IsZero() && t.OpenTime.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.OpenTime.After(f.To) {
		return false
	}
	if len(f.Tags) > 0 {
		any := false
		for _, want := range f.Tags {
			if containsFold(t.Tags, want) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	return true
}

// Apply returns the trades passing the filter, in their original order.
func (f Filter) Apply(trades []Trade) []Trade {
	var out []Trade
	for _, t := range trades {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func containsFold(list []string, want string) bool {
	for _, s := range list {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}

// SortKey names a trade ordering.
type SortKey string

const (
	ByTime     SortKey = "time"
	BySymbol   SortKey = "symbol"
	ByQuantity SortKey = "quantity"
	ByNetPnL   SortKey = "pnl"
)

// Sort orders trades in place. The sort is stable so ties keep their
// journal order. Unknown keys fall back to ByTime.
func Sort(trades []Trade, key SortKey, desc bool) {
	var less func(a, b Trade) bool
	switch key {
	case BySymbol:
		less = func(a, b Trade) bool { return a.Symbol < b.Symbol }
	case ByQuantity:
		less = func(a, b Trade) bool { return a.Quantity < b.Quantity }
	case ByNetPnL:
		less = func(a, b Trade) bool { return a.Result().PnLNetUSD < b.Result().PnLNetUSD }
	default:
		less = func(a, b Trade) bool { return a.When().Before(b.When()) }
	}

	sort.SliceStable(trades, func(i, j int) bool {
		if desc {
			return less(trades[j], trades[i])
		}
		return less(trades[i], trades[j])
	})
}
