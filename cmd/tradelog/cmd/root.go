package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradelog/config"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "A trade journal calculator for futures markets",
	Long: `Tradelog computes the numbers a discretionary futures trader records
after every trade.

It provides tools for:
  - P&L in points and dollars with per-contract commissions
  - Risk, reward and risk/reward from stop and target levels
  - Trade efficiency against the maximum favorable excursion
  - Risk-based position sizing
  - Journal statistics and org-mode trade blocks

The contract table is built in; no network access is required.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (built-in defaults when omitted)")
}

// loadConfig resolves the active configuration: the --config file when
// given, built-in defaults otherwise.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
