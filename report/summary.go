package report

import (
	"fmt"
	"io"

	"tradelog/analytics"
)

// WriteSummary prints the journal statistics block.
func WriteSummary(w io.Writer, s analytics.Summary) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Journal Summary")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintln(w, "Trades")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Total:         %d\n", s.Trades)
	fmt.Fprintf(w, "Closed:        %d\n", s.Closed)
	fmt.Fprintf(w, "Open:          %d\n", s.Open)
	if s.Skipped > 0 {
		fmt.Fprintf(w, "Skipped:       %d (not computable)\n", s.Skipped)
	}
	fmt.Fprintf(w, "Wins:          %d\n", s.Wins)
	fmt.Fprintf(w, "Losses:        %d\n", s.Losses)
	if s.Scratches > 0 {
		fmt.Fprintf(w, "Scratches:     %d\n", s.Scratches)
	}
	fmt.Fprintf(w, "Win Rate:      %.1f%%\n", s.WinRatePct)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "P&L")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Net:           $%.2f\n", s.NetUSD)
	fmt.Fprintf(w, "Gross Profit:  $%.2f\n", s.GrossProfitUSD)
	fmt.Fprintf(w, "Gross Loss:    $%.2f\n", s.GrossLossUSD)
	fmt.Fprintf(w, "Commissions:   $%.2f\n", s.CommissionsUSD)
	if s.ProfitFactor > 0 {
		fmt.Fprintf(w, "Profit Factor: %.2f\n", s.ProfitFactor)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Per Trade")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Expectancy:    $%.2f\n", s.ExpectancyUSD)
	fmt.Fprintf(w, "Avg Win:       $%.2f\n", s.AvgWinUSD)
	fmt.Fprintf(w, "Avg Loss:      $%.2f\n", s.AvgLossUSD)
	if s.StdDevUSD > 0 {
		fmt.Fprintf(w, "Std Dev:       $%.2f\n", s.StdDevUSD)
	}
	fmt.Fprintf(w, "Best:          $%.2f\n", s.BestUSD)
	fmt.Fprintf(w, "Worst:         $%.2f\n", s.WorstUSD)
	if s.MaxDrawdownUSD > 0 {
		fmt.Fprintf(w, "Max Drawdown:  $%.2f\n", s.MaxDrawdownUSD)
	}
	fmt.Fprintln(w)
}

// WriteDaily renders the calendar buckets as an org table.
func WriteDaily(w io.Writer, buckets []analytics.DayBucket) {
	fmt.Fprintln(w, "| Day        | Trades | Wins | Losses |        Net |")
	fmt.Fprintln(w, "|------------+--------+------+--------+------------|")
	for _, b := range buckets {
		fmt.Fprintf(w, "| %s | %6d | %4d | %6d | %10.2f |\n",
			b.Day.Format("2006-01-02"), b.Trades, b.Wins, b.Losses, b.NetUSD)
	}
}
