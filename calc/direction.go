package calc

import (
	"fmt"
	"strings"
)

// Direction is the side of a trade.
type Direction string

const (
	Long  Direction = "LONG"
	Short Direction = "SHORT"
)

func (d Direction) Valid() bool { return d == Long || d == Short }

// Sign is +1 for long, -1 for short, 0 for an unresolved direction.
func (d Direction) Sign() float64 {
	switch d {
	case Long:
		return 1
	case Short:
		return -1
	default:
		return 0
	}
}

// Source records how a result's direction was obtained. Price movement
// alone cannot distinguish a losing long from a losing short, so callers
// should surface Inferred directions distinctly instead of treating them
// like user-entered ones.
type Source int

const (
	Explicit Source = iota
	Inferred
)

func (s Source) String() string {
	switch s {
	case Explicit:
		return "EXPLICIT"
	case Inferred:
		return "INFERRED"
	default:
		return "UNKNOWN"
	}
}

// Resolve picks the trade direction. An explicit direction always wins;
// otherwise the direction is inferred from price movement: exit above
// entry means long, anything else means short.
func Resolve(explicit Direction, entry, exit float64) (Direction, Source) {
	if explicit.Valid() {
		return explicit, Explicit
	}
	if exit > entry {
		return Long, Inferred
	}
	return Short, Inferred
}

// ParseDirection normalizes a user-entered direction string. The empty
// string is allowed and means "infer from prices".
func ParseDirection(raw string) (Direction, error) {
	switch s := strings.ToUpper(strings.TrimSpace(raw)); s {
	case "":
		return "", nil
	case string(Long):
		return Long, nil
	case string(Short):
		return Short, nil
	default:
		return "", fmt.Errorf("direction must be LONG or SHORT, got %q", raw)
	}
}
