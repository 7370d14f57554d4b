// Package market holds the static contract specifications for every
// instrument the journal supports. The table is fixed at build time:
// adding a market means adding a row, never registering one at runtime.
package market

import (
	"fmt"
	"math"
)

// CommissionKind selects how a market's default commission is applied.
type CommissionKind int

const (
	PerContract CommissionKind = iota
	PerShare
	Percentage
)

func (k CommissionKind) String() string {
	switch k {
	case PerContract:
		return "PER_CONTRACT"
	case PerShare:
		return "PER_SHARE"
	case Percentage:
		return "PERCENTAGE"
	default:
		return "UNKNOWN"
	}
}

// Commission is a market's default round-turn cost per unit.
// PerShare is charged identically to PerContract against the trade's
// quantity; the journal has no separate share-count field.
type Commission struct {
	Amount float64
	Kind   CommissionKind
}

// RiskDefaults are advisory numbers used to prefill forms and annotate
// sizing suggestions. They are never enforced as hard limits.
type RiskDefaults struct {
	RiskPerTradePct float64 // percent of equity, 1 = 1%
	StopLossPct     float64 // percent of entry price
	TakeProfitPct   float64 // percent of entry price
	MaxPositionSize float64 // contracts
}

// Spec describes one tradable futures contract.
type Spec struct {
	Symbol     string
	Name       string
	TickSize   float64 // smallest price increment
	PointValue float64 // dollars per 1.0 price point per contract
	Precision  int     // price decimals for display
	Commission Commission
	Risk       RiskDefaults
}

// Valid reports whether the spec satisfies the table invariants.
func (s Spec) Valid() error {
	if s.TickSize <= 0 {
		return fmt.Errorf("market %s: tick size must be positive, got %v", s.Symbol, s.TickSize)
	}
	if s.PointValue <= 0 {
		return fmt.Errorf("market %s: point value must be positive, got %v", s.Symbol, s.PointValue)
	}
	return nil
}

// TickValue returns the dollar value of a single tick per contract.
func (s Spec) TickValue() float64 {
	return s.TickSize * s.PointValue
}

// RoundPrice rounds a price to the market's display precision.
func (s Spec) RoundPrice(p float64) float64 {
	pow := math.Pow(10, float64(s.Precision))
	return math.Round(p*pow) / pow
}
