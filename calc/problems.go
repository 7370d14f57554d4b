package calc

// Code classifies a validation problem. Every problem is recoverable by
// corrected user input; none is fatal.
type Code string

const (
	CodeUnknownMarket            Code = "unknown_market"
	CodeMissingField             Code = "missing_field"
	CodeNonPositive              Code = "non_positive"
	CodeDirectionalInconsistency Code = "directional_inconsistency"
)

// Problem is one validation finding. Problems are collected in rule
// order and returned in-band; the calculator never throws them.
type Problem struct {
	Code Code
	Msg  string
}

func (p Problem) String() string { return p.Msg }
