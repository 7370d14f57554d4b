package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"tradelog/calc"
	"tradelog/report"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute P&L, risk and efficiency for one trade",
	Long: `Calculate the derived numbers for a single trade from entered prices.

Price flags take plain numbers. Omit --exit while the position is open;
leave --direction empty to infer it from entry and exit. Bad fields do
not abort the run: whatever can still be computed is printed together
with the list of problems.

Examples:
  tradelog calc --market ES --direction LONG --entry 5000 --exit 5010 --qty 2
  tradelog calc --market NQ --direction SHORT --entry 18000 --stop 18050 --tp 17800
  tradelog calc --entry 5000 --exit 5012.75 --qty 1 --mfe 5015`,
	RunE: runCalc,
}

var (
	calcMarket    string
	calcDirection string
	calcEntry     string
	calcExit      string
	calcQty       string
	calcStop      string
	calcTP        string
	calcMFE       string
	calcMAE       string
)

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVarP(&calcMarket, "market", "m", "", "market symbol (default from config)")
	calcCmd.Flags().StringVarP(&calcDirection, "direction", "d", "", "LONG or SHORT (inferred from prices when omitted)")
	calcCmd.Flags().StringVar(&calcEntry, "entry", "", "entry price (required)")
	calcCmd.Flags().StringVar(&calcExit, "exit", "", "exit price (omit while the position is open)")
	calcCmd.Flags().StringVarP(&calcQty, "qty", "q", "1", "number of contracts")
	calcCmd.Flags().StringVar(&calcStop, "stop", "", "stop loss price")
	calcCmd.Flags().StringVar(&calcTP, "tp", "", "take profit price")
	calcCmd.Flags().StringVar(&calcMFE, "mfe", "", "best price the trade reached")
	calcCmd.Flags().StringVar(&calcMAE, "mae", "", "worst price the trade reached")

	calcCmd.MarkFlagRequired("entry")
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	symbol := calcMarket
	if symbol == "" {
		symbol = cfg.Defaults.Market
	}

	in, probs := calc.ParseInput(calc.FormFields{
		Direction:    calcDirection,
		EntryPrice:   calcEntry,
		ExitPrice:    calcExit,
		Quantity:     calcQty,
		StopLoss:     calcStop,
		TakeProfit:   calcTP,
		MaxFavorable: calcMFE,
		MaxAdverse:   calcMAE,
	})

	r := calc.CalculateForSymbol(in, symbol)
	if len(probs) > 0 {
		r.Problems = append(probs, r.Problems...)
		r.Valid = false
	}

	report.WriteResult(os.Stdout, symbol, r)
	return nil
}
