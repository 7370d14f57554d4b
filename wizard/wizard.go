// Package wizard walks a trade entry through a fixed sequence of
// validated screens. The wizard accumulates raw form strings only;
// nothing is parsed twice and nothing is stored anywhere until Submit
// hands the finished trade back to the caller. Dropping the value
// abandons the entry.
package wizard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tradelog/calc"
	"tradelog/journal"
	"tradelog/market"
)

// ErrSubmitted rejects any navigation after a successful Submit.
var ErrSubmitted = errors.New("wizard: entry already submitted")

// Draft is the accumulated raw form state.
type Draft struct {
	Symbol string
	Form   calc.FormFields
	Setup  string
	Notes  string
	Tags   []string
}

// Wizard is the entry flow's state machine. The zero value is not
// usable; start with New.
type Wizard struct {
	Draft Draft

	step      Step
	submitted bool
}

func New() *Wizard { return &Wizard{step: StepMarket} }

func (w *Wizard) Step() Step      { return w.step }
func (w *Wizard) Submitted() bool { return w.submitted }

// Check validates the current step's slice of the draft and reports
// its problems. Steps other than review validate only their own
// fields, so earlier mistakes do not echo on every screen.
func (w *Wizard) Check() []calc.Problem {
	d := w.Draft
	switch w.step {
	case StepMarket:
		if _, ok := market.Lookup(d.Symbol); !ok {
			return []calc.Problem{{Code: calc.CodeUnknownMarket, Msg: "Unknown market"}}
		}
		return nil

	case StepBasics:
		// quantity is the sizing step's concern, stand in a 1
		in, probs := calc.ParseInput(calc.FormFields{
			Direction:  d.Form.Direction,
			EntryPrice: d.Form.EntryPrice,
			ExitPrice:  d.Form.ExitPrice,
			Quantity:   "1",
		})
		if len(probs) > 0 {
			return probs
		}
		return calc.CalculateForSymbol(in, d.Symbol).Problems

	case StepSizing:
		in, probs := calc.ParseInput(calc.FormFields{EntryPrice: "1", Quantity: d.Form.Quantity})
		if len(probs) > 0 {
			return probs
		}
		if in.Quantity <= 0 {
			return []calc.Problem{{Code: calc.CodeNonPositive, Msg: "Quantity must be greater than zero"}}
		}
		return nil

	case StepRisk:
		in, probs := calc.ParseInput(calc.FormFields{
			Direction:  d.Form.Direction,
			EntryPrice: d.Form.EntryPrice,
			ExitPrice:  d.Form.ExitPrice,
			Quantity:   "1",
			StopLoss:   d.Form.StopLoss,
			TakeProfit: d.Form.TakeProfit,
		})
		if len(probs) > 0 {
			return probs
		}
		return calc.CalculateForSymbol(in, d.Symbol).Problems

	case StepReview:
		in, probs := calc.ParseInput(d.Form)
		if len(probs) > 0 {
			return probs
		}
		return calc.CalculateForSymbol(in, d.Symbol).Problems
	}
	return nil
}

// Next advances to the following step once the current one validates.
func (w *Wizard) Next() error {
	if w.submitted {
		return ErrSubmitted
	}
	if w.step == StepReview {
		return errors.New("wizard: review is the last step, use Submit")
	}
	if probs := w.Check(); len(probs) > 0 {
		return fmt.Errorf("wizard: %s", joinProblems(probs))
	}
	w.step++
	return nil
}

// Back returns to the previous step. No validation: backing out of a
// half-filled screen is always allowed.
func (w *Wizard) Back() error {
	if w.submitted {
		return ErrSubmitted
	}
	if w.step == StepMarket {
		return errors.New("wizard: already at the first step")
	}
	w.step--
	return nil
}

// Skip jumps over the current step without validating it.
func (w *Wizard) Skip() error {
	if w.submitted {
		return ErrSubmitted
	}
	if !w.step.Skippable() {
		return fmt.Errorf("wizard: %s cannot be skipped", w.step)
	}
	w.step++
	return nil
}

// Submit runs the engine's full validation one last time and builds
// the trade. The recorded direction is what the user typed, possibly
// blank; an inferred direction lives only on the result.
func (w *Wizard) Submit() (journal.Trade, calc.Result, error) {
	if w.submitted {
		return journal.Trade{}, calc.Result{}, ErrSubmitted
	}
	if w.step != StepReview {
		return journal.Trade{}, calc.Result{}, fmt.Errorf("wizard: submit from %s, not %s", StepReview, w.step)
	}

	in, probs := calc.ParseInput(w.Draft.Form)
	if len(probs) == 0 {
		r := calc.CalculateForSymbol(in, w.Draft.Symbol)
		probs = r.Problems
		if r.Valid {
			tr := journal.New(w.Draft.Symbol, in.Direction, in.EntryPrice, in.Quantity)
			tr.ExitPrice = in.ExitPrice
			tr.StopLoss = in.StopLoss
			tr.TakeProfit = in.TakeProfit
			tr.MaxFavorable = in.MaxFavorable
			tr.MaxAdverse = in.MaxAdverse
			tr.Setup = strings.TrimSpace(w.Draft.Setup)
			tr.Notes = strings.TrimSpace(w.Draft.Notes)
			tr.Tags = w.Draft.Tags
			if in.ExitPrice != nil {
				now := time.Now().UTC()
				tr.CloseTime = &now
			}
			w.submitted = true
			return tr, r, nil
		}
	}
	return journal.Trade{}, calc.Result{}, fmt.Errorf("wizard: %s", joinProblems(probs))
}

func joinProblems(probs []calc.Problem) string {
	msgs := make([]string, len(probs))
	for i, p := range probs {
		msgs[i] = p.Msg
	}
	return strings.Join(msgs, "; ")
}
