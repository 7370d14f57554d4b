package wizard

// Step is one screen of the guided trade-entry flow. Steps run in
// declaration order; there is no branching.
type Step int

const (
	StepMarket Step = iota
	StepBasics
	StepSizing
	StepRisk
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepMarket:
		return "Market Selection"
	case StepBasics:
		return "Basic Info"
	case StepSizing:
		return "Position Sizing"
	case StepRisk:
		return "Risk Management"
	case StepReview:
		return "Review & Submit"
	default:
		return "Unknown"
	}
}

// Skippable reports whether the step may be jumped over without
// validating. Only risk management is optional.
func (s Step) Skippable() bool { return s == StepRisk }

// Steps returns the flow in order, for progress displays.
func Steps() []Step {
	return []Step{StepMarket, StepBasics, StepSizing, StepRisk, StepReview}
}
