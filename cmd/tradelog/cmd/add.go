package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tradelog/calc"
	"tradelog/config"
	"tradelog/journal"
	"tradelog/market"
	"tradelog/report"
	"tradelog/wizard"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Enter a trade through the guided wizard",
	Long: `Walk through trade entry one step at a time: market, prices, size,
risk levels, review. Press enter to accept the value in brackets. The
risk step may be skipped; answering n at review steps back for fixes.

The submitted trade is printed as an org-mode block for pasting into a
journal file. Nothing is stored.`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tr, r, err := runWizard(os.Stdin, os.Stdout, cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(report.FormatTradeOrg(tr, r))
	return nil
}

// runWizard drives the step machine over a line-oriented prompt loop.
// Split from runAdd so scripted input can exercise it.
func runWizard(in io.Reader, out io.Writer, cfg *config.Config) (journal.Trade, calc.Result, error) {
	sc := bufio.NewScanner(in)
	eof := false

	prompt := func(label, current string) string {
		if eof {
			return current
		}
		if current != "" {
			fmt.Fprintf(out, "%s [%s]: ", label, current)
		} else {
			fmt.Fprintf(out, "%s: ", label)
		}
		if !sc.Scan() {
			eof = true
			return current
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			return current
		}
		return line
	}

	w := wizard.New()
	w.Draft.Symbol = cfg.Defaults.Market

	for !eof {
		fmt.Fprintf(out, "\n== Step %d of %d: %s ==\n", int(w.Step())+1, len(wizard.Steps()), w.Step())

		switch w.Step() {
		case wizard.StepMarket:
			fmt.Fprintf(out, "Markets: %s\n", strings.Join(market.Symbols(), " "))
			w.Draft.Symbol = prompt("Market", w.Draft.Symbol)

		case wizard.StepBasics:
			w.Draft.Form.Direction = prompt("Direction (LONG/SHORT, empty to infer)", w.Draft.Form.Direction)
			w.Draft.Form.EntryPrice = prompt("Entry price", w.Draft.Form.EntryPrice)
			w.Draft.Form.ExitPrice = prompt("Exit price (empty while open)", w.Draft.Form.ExitPrice)

		case wizard.StepSizing:
			w.Draft.Form.Quantity = prompt("Contracts", w.Draft.Form.Quantity)

		case wizard.StepRisk:
			if strings.EqualFold(prompt("Set stop and target? (y/skip)", "y"), "skip") {
				if err := w.Skip(); err != nil {
					return journal.Trade{}, calc.Result{}, err
				}
				continue
			}
			w.Draft.Form.StopLoss = prompt("Stop loss", w.Draft.Form.StopLoss)
			w.Draft.Form.TakeProfit = prompt("Take profit", w.Draft.Form.TakeProfit)
			w.Draft.Form.MaxFavorable = prompt("Best price reached (optional)", w.Draft.Form.MaxFavorable)
			w.Draft.Form.MaxAdverse = prompt("Worst price reached (optional)", w.Draft.Form.MaxAdverse)

		case wizard.StepReview:
			parsed, _ := calc.ParseInput(w.Draft.Form)
			report.WriteResult(out, w.Draft.Symbol, calc.CalculateForSymbol(parsed, w.Draft.Symbol))

			w.Draft.Setup = prompt("Setup (optional)", w.Draft.Setup)
			w.Draft.Notes = prompt("Notes (optional)", w.Draft.Notes)

			answer := prompt("Submit? (y/n)", "y")
			if eof {
				continue
			}
			if strings.EqualFold(answer, "y") {
				tr, r, err := w.Submit()
				if err != nil {
					fmt.Fprintf(out, "  ! %v\n", err)
				} else {
					return tr, r, nil
				}
			}
			if err := w.Back(); err != nil {
				return journal.Trade{}, calc.Result{}, err
			}
			continue
		}

		if err := w.Next(); err != nil {
			fmt.Fprintf(out, "  ! %v\n", err)
		}
	}

	return journal.Trade{}, calc.Result{}, errors.New("wizard: input ended before submit")
}
