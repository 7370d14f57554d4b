package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tradelog/analytics"
	"tradelog/calc"
	"tradelog/journal"
	"tradelog/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize a YAML trade journal",
	Long: `Read a trade list from a YAML file, filter it and print journal
statistics. Open positions are counted but never enter the P&L numbers.

Examples:
  tradelog stats --file trades.yaml
  tradelog stats --file trades.yaml --symbol ES --closed
  tradelog stats --file trades.yaml --daily
  tradelog stats --file trades.yaml --from 2026-01-01 --org`,
	RunE: runStats,
}

var (
	statsFile       string
	statsSymbols    []string
	statsDirection  string
	statsOnlyOpen   bool
	statsOnlyClosed bool
	statsFrom       string
	statsTo         string
	statsTags       []string
	statsSort       string
	statsDesc       bool
	statsDaily      bool
	statsOrg        bool
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsFile, "file", "f", "trades.yaml", "path to the YAML trade list")
	statsCmd.Flags().StringSliceVarP(&statsSymbols, "symbol", "s", nil, "only these symbols")
	statsCmd.Flags().StringVarP(&statsDirection, "direction", "d", "", "only LONG or only SHORT trades")
	statsCmd.Flags().BoolVar(&statsOnlyOpen, "open", false, "only open positions")
	statsCmd.Flags().BoolVar(&statsOnlyClosed, "closed", false, "only closed trades")
	statsCmd.Flags().StringVar(&statsFrom, "from", "", "only trades on or after this day (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "only trades before this day (YYYY-MM-DD)")
	statsCmd.Flags().StringSliceVar(&statsTags, "tag", nil, "only trades carrying these tags")
	statsCmd.Flags().StringVar(&statsSort, "sort", "time", "trade order: time, symbol, quantity or pnl")
	statsCmd.Flags().BoolVar(&statsDesc, "desc", false, "sort descending")
	statsCmd.Flags().BoolVar(&statsDaily, "daily", false, "print the per-day table")
	statsCmd.Flags().BoolVar(&statsOrg, "org", false, "print trades as org-mode blocks instead of statistics")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	trades, err := journal.ReadFile(statsFile)
	if err != nil {
		return fmt.Errorf("read trades: %w", err)
	}

	dir, err := calc.ParseDirection(statsDirection)
	if err != nil {
		return err
	}

	f := journal.Filter{
		Symbols:    statsSymbols,
		Direction:  dir,
		OnlyOpen:   statsOnlyOpen,
		OnlyClosed: statsOnlyClosed,
		Tags:       statsTags,
	}
	if statsFrom != "" {
		from, err := time.ParseInLocation("2006-01-02", statsFrom, loc)
		if err != nil {
			return fmt.Errorf("from: %w", err)
		}
		f.From = from
	}
	if statsTo != "" {
		to, err := time.ParseInLocation("2006-01-02", statsTo, loc)
		if err != nil {
			return fmt.Errorf("to: %w", err)
		}
		f.To = to
	}

	trades = f.Apply(trades)
	journal.Sort(trades, journal.SortKey(statsSort), statsDesc)

	if statsOrg || cfg.Report.Org {
		fmt.Println(report.FormatTradesOrg(trades))
		return nil
	}

	report.WriteSummary(os.Stdout, analytics.Summarize(trades))
	if statsDaily {
		report.WriteDaily(os.Stdout, analytics.GroupByDay(trades, loc))
	}
	return nil
}
