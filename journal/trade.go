// Package journal holds the raw trade records and the predicate logic
// that slices them for tables and reports. Only entered fields are kept
// on a Trade; every derived number is recomputed through the calc
// engine on demand.
package journal

import (
	"strings"
	"time"

	"tradelog/calc"
	"tradelog/pkg/id"
)

// Trade is one journal entry. Direction holds what the user recorded,
// which may be blank; the engine infers a direction for display without
// ever writing it back here.
type Trade struct {
	ID        string         `yaml:"id,omitempty"`
	Symbol    string         `yaml:"symbol"`
	Direction calc.Direction `yaml:"direction,omitempty"`
	Quantity  float64        `yaml:"quantity"`

	EntryPrice   float64  `yaml:"entry"`
	ExitPrice    *float64 `yaml:"exit,omitempty"`
	StopLoss     *float64 `yaml:"stop,omitempty"`
	TakeProfit   *float64 `yaml:"target,omitempty"`
	MaxFavorable *float64 `yaml:"max_favorable,omitempty"`
	MaxAdverse   *float64 `yaml:"max_adverse,omitempty"`

	OpenTime  time.Time  `yaml:"open_time,omitempty"`
	CloseTime *time.Time `yaml:"close_time,omitempty"`

	Setup string   `yaml:"setup,omitempty"`
	Notes string   `yaml:"notes,omitempty"`
	Tags  []string `yaml:"tags,omitempty"`
}

// New builds a quick-entry trade with a fresh ID and the open time
// stamped now.
func New(symbol string, dir calc.Direction, entry, qty float64) Trade {
	return Trade{
		ID:         id.New(),
		Symbol:     strings.ToUpper(strings.TrimSpace(symbol)),
		Direction:  dir,
		EntryPrice: entry,
		Quantity:   qty,
		OpenTime:   time.Now().UTC(),
	}
}

// Open reports whether the position is still on.
func (t Trade) Open() bool { return t.ExitPrice == nil }

// Input is the bridge into the calc engine.
func (t Trade) Input() calc.Input {
	return calc.Input{
		Direction:    t.Direction,
		EntryPrice:   t.EntryPrice,
		ExitPrice:    t.ExitPrice,
		Quantity:     t.Quantity,
		StopLoss:     t.StopLoss,
		TakeProfit:   t.TakeProfit,
		MaxFavorable: t.MaxFavorable,
		MaxAdverse:   t.MaxAdverse,
	}
}

// Result recomputes the trade's derived numbers.
func (t Trade) Result() calc.Result {
	return calc.CalculateForSymbol(t.Input(), t.Symbol)
}

// When places the trade on a timeline: close time when realized,
// open time otherwise.
func (t Trade) When() time.Time {
	if t.CloseTime != nil {
		return *t.CloseTime
	}
	return t.OpenTime
}
