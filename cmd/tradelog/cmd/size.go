package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tradelog/market"
	"tradelog/risk"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Suggest a position size from equity and stop distance",
	Long: `Size a position so the loss at the stop stays inside the risk budget.

Equity and risk percent come from the config file; flags override both.
Risk is a percent number: --risk 0.5 means half a percent of equity.

Examples:
  tradelog size --market ES --entry 5000 --stop 4990
  tradelog size --market CL --entry 78.50 --stop 79.10 --equity 10000 --risk 0.5`,
	RunE: runSize,
}

var (
	sizeMarket string
	sizeEntry  float64
	sizeStop   float64
	sizeEquity float64
	sizeRisk   float64
)

func init() {
	rootCmd.AddCommand(sizeCmd)

	sizeCmd.Flags().StringVarP(&sizeMarket, "market", "m", "", "market symbol (default from config)")
	sizeCmd.Flags().Float64Var(&sizeEntry, "entry", 0, "entry price (required)")
	sizeCmd.Flags().Float64Var(&sizeStop, "stop", 0, "stop loss price (required)")
	sizeCmd.Flags().Float64Var(&sizeEquity, "equity", 0, "account equity (default from config)")
	sizeCmd.Flags().Float64Var(&sizeRisk, "risk", 0, "risk percent per trade, 1 = 1% (default from config)")

	sizeCmd.MarkFlagRequired("entry")
	sizeCmd.MarkFlagRequired("stop")
}

func runSize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	symbol := sizeMarket
	if symbol == "" {
		symbol = cfg.Defaults.Market
	}
	spec, ok := market.Lookup(symbol)
	if !ok {
		return fmt.Errorf("unknown market: %s (known: %s)", symbol, strings.Join(market.Symbols(), ", "))
	}

	equity := sizeEquity
	if equity == 0 {
		equity = cfg.Account.Equity
	}
	riskPct := sizeRisk
	if riskPct == 0 {
		riskPct = cfg.Defaults.RiskPercent
	}

	in := risk.SizeInput{
		Equity:     equity,
		RiskPct:    riskPct,
		EntryPrice: sizeEntry,
		StopPrice:  sizeStop,
		Spec:       spec,
	}
	res, err := risk.Suggest(in)
	if err != nil {
		return err
	}

	fmt.Println("==================================================")
	fmt.Printf(" %s Position Size\n", spec.Symbol)
	fmt.Println("==================================================")
	fmt.Printf("Equity:        $%.2f\n", equity)
	fmt.Printf("Risk Budget:   $%.2f (%.2f%%)\n", res.BudgetUSD, riskPct)
	fmt.Printf("Stop Distance: %.*f points\n", spec.Precision, res.StopPoints)
	fmt.Printf("Risk/Contract: $%.2f\n", res.RiskPerContractUSD)
	fmt.Printf("Contracts:     %d\n", res.Contracts)
	fmt.Printf("Risk Taken:    $%.2f\n", res.RiskUSD)

	if notes := risk.Advise(in, res); len(notes) > 0 {
		fmt.Println()
		fmt.Println("Notes")
		fmt.Println("--------------------------------------------------")
		for _, n := range notes {
			fmt.Printf("- %s\n", n)
		}
	}
	return nil
}
