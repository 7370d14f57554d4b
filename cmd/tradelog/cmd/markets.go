package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tradelog/market"
)

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "List the supported futures contracts",
	Long: `Print the built-in contract table: tick size, point value and
commission per symbol.

Examples:
  tradelog markets
  tradelog markets show ES`,
	RunE: runMarkets,
}

var marketsShowCmd = &cobra.Command{
	Use:   "show <symbol>",
	Short: "Show one contract in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runMarketsShow,
}

func init() {
	rootCmd.AddCommand(marketsCmd)
	marketsCmd.AddCommand(marketsShowCmd)
}

func runMarkets(cmd *cobra.Command, args []string) error {
	fmt.Printf("%-6s %-24s %9s %12s %11s  %s\n",
		"SYMBOL", "NAME", "TICK", "POINT VALUE", "TICK VALUE", "COMMISSION")
	for _, s := range market.List() {
		fmt.Printf("%-6s %-24s %9v %12v %11v  $%.2f %s\n",
			s.Symbol, s.Name, s.TickSize, s.PointValue, s.TickValue(),
			s.Commission.Amount, s.Commission.Kind)
	}
	return nil
}

func runMarketsShow(cmd *cobra.Command, args []string) error {
	s, ok := market.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown market: %s (known: %s)", args[0], strings.Join(market.Symbols(), ", "))
	}

	fmt.Printf("%s (%s)\n", s.Symbol, s.Name)
	fmt.Printf("  Tick Size:     %v\n", s.TickSize)
	fmt.Printf("  Point Value:   $%v\n", s.PointValue)
	fmt.Printf("  Tick Value:    $%v\n", s.TickValue())
	fmt.Printf("  Precision:     %d decimals\n", s.Precision)
	fmt.Printf("  Commission:    $%.2f %s\n", s.Commission.Amount, s.Commission.Kind)
	fmt.Printf("  Risk/Trade:    %.2f%%\n", s.Risk.RiskPerTradePct)
	fmt.Printf("  Stop Guide:    %.2f%% of price\n", s.Risk.StopLossPct)
	fmt.Printf("  Target Guide:  %.2f%% of price\n", s.Risk.TakeProfitPct)
	fmt.Printf("  Max Contracts: %v\n", s.Risk.MaxPositionSize)
	return nil
}
