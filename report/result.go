package report

import (
	"fmt"
	"io"
	"strings"

	"tradelog/calc"
)

// WriteResult prints one calculation.
func WriteResult(w io.Writer, symbol string, r calc.Result) {
	d := r.Rounded()

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " %s Trade Calculation\n", strings.ToUpper(strings.TrimSpace(symbol)))
	fmt.Fprintln(w, "==================================================")

	if r.Direction.Valid() {
		if r.Source == calc.Inferred {
			fmt.Fprintf(w, "Direction:     %s (inferred from prices)\n", r.Direction)
		} else {
			fmt.Fprintf(w, "Direction:     %s\n", r.Direction)
		}
	}
	if r.Open {
		fmt.Fprintln(w, "Status:        open")
	}

	if !r.Open && (r.Valid || r.HasProblem(calc.CodeUnknownMarket)) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "P&L")
		fmt.Fprintln(w, "--------------------------------------------------")
		fmt.Fprintf(w, "Points:        %.*f\n", r.Precision, d.PnLPoints)
		if r.HasProblem(calc.CodeUnknownMarket) {
			fmt.Fprintln(w, "Dollars:       unavailable (unknown market)")
		} else {
			fmt.Fprintf(w, "Gross:         $%.2f\n", d.PnLGrossUSD)
			fmt.Fprintf(w, "Commission:    $%.2f\n", d.CommissionUSD)
			fmt.Fprintf(w, "Net:           $%.2f\n", d.PnLNetUSD)
		}
	}

	if d.RiskPoints != 0 || d.RewardPoints != 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Risk")
		fmt.Fprintln(w, "--------------------------------------------------")
		fmt.Fprintf(w, "Risk Points:   %.*f\n", r.Precision, d.RiskPoints)
		fmt.Fprintf(w, "Reward Points: %.*f\n", r.Precision, d.RewardPoints)
		fmt.Fprintf(w, "Risk/Reward:   %.2f\n", d.RiskReward)
	}
	if d.Efficiency > 0 {
		fmt.Fprintf(w, "Efficiency:    %.1f%%\n", d.Efficiency)
	}
	if d.FavorablePoints != 0 || d.AdversePoints != 0 {
		fmt.Fprintf(w, "MFE / MAE:     %.*f / %.*f points\n",
			r.Precision, d.FavorablePoints, r.Precision, d.AdversePoints)
	}

	if len(r.Problems) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Problems")
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, p := range r.Problems {
			fmt.Fprintf(w, "- %s\n", p.Msg)
		}
	}
	fmt.Fprintln(w)
}
