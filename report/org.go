// Package report renders trades and journal summaries as plain text
// and org-mode blocks. Nothing here computes: every number comes in
// already derived, and rounding is the engine's display rounding.
package report

import (
	"fmt"
	"strings"
	"time"

	"tradelog/calc"
	"tradelog/journal"
	"tradelog/pkg/id"
)

// FormatTradeOrg renders a trade and its computed result as an
// org-mode block for pasting into a journal file. Structured facts sit
// in a PROPERTIES drawer; narrative headings stay blank for the trader
// to fill in.
func FormatTradeOrg(t journal.Trade, r calc.Result) string {
	d := r.Rounded()
	label := dirLabel(r)

	heading := fmt.Sprintf("** Trade: %s %s", t.Symbol, label)
	if t.ID != "" {
		heading += fmt.Sprintf(" (%s)", id.Short(t.ID))
	}

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	if t.ID != "" {
		b.WriteString(fmt.Sprintf(":ID: %s\n", t.ID))
	}
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", t.Symbol))
	b.WriteString(fmt.Sprintf(":DIRECTION: %s\n", label))
	b.WriteString(fmt.Sprintf(":QUANTITY: %v\n", t.Quantity))
	b.WriteString(fmt.Sprintf(":ENTRY: %.*f\n", r.Precision, t.EntryPrice))
	if t.ExitPrice != nil {
		b.WriteString(fmt.Sprintf(":EXIT: %.*f\n", r.Precision, *t.ExitPrice))
	}
	if t.StopLoss != nil {
		b.WriteString(fmt.Sprintf(":STOP: %.*f\n", r.Precision, *t.StopLoss))
	}
	if t.TakeProfit != nil {
		b.WriteString(fmt.Sprintf(":TARGET: %.*f\n", r.Precision, *t.TakeProfit))
	}
	if t.MaxFavorable != nil {
		b.WriteString(fmt.Sprintf(":MFE: %.*f\n", r.Precision, *t.MaxFavorable))
	}
	if t.MaxAdverse != nil {
		b.WriteString(fmt.Sprintf(":MAE: %.*f\n", r.Precision, *t.MaxAdverse))
	}
	if !t.OpenTime.IsZero() {
		b.WriteString(fmt.Sprintf(":OPEN_TIME: %s\n", t.OpenTime.UTC().Format(time.RFC3339)))
	}
	if t.CloseTime != nil {
		b.WriteString(fmt.Sprintf(":CLOSE_TIME: %s\n", t.CloseTime.UTC().Format(time.RFC3339)))
	}
	if !r.Open && r.Valid {
		b.WriteString(fmt.Sprintf(":PNL_POINTS: %.*f\n", r.Precision, d.PnLPoints))
		b.WriteString(fmt.Sprintf(":PNL_GROSS: %.2f\n", d.PnLGrossUSD))
		b.WriteString(fmt.Sprintf(":COMMISSION: %.2f\n", d.CommissionUSD))
		b.WriteString(fmt.Sprintf(":PNL_NET: %.2f\n", d.PnLNetUSD))
	}
	if d.RiskPoints != 0 || d.RewardPoints != 0 {
		b.WriteString(fmt.Sprintf(":RISK_POINTS: %.*f\n", r.Precision, d.RiskPoints))
		b.WriteString(fmt.Sprintf(":REWARD_POINTS: %.*f\n", r.Precision, d.RewardPoints))
		b.WriteString(fmt.Sprintf(":RR: %.2f\n", d.RiskReward))
	}
	if d.Efficiency > 0 {
		b.WriteString(fmt.Sprintf(":EFFICIENCY: %.1f%%\n", d.Efficiency))
	}
	if len(t.Tags) > 0 {
		b.WriteString(fmt.Sprintf(":TAGS: %s\n", strings.Join(t.Tags, " ")))
	}
	b.WriteString(":END:\n")
	b.WriteString("\n")

	if t.Setup != "" {
		b.WriteString(fmt.Sprintf("*** Setup\n- %s\n\n", t.Setup))
	} else {
		b.WriteString("*** Setup\n- \n\n")
	}
	b.WriteString("*** Execution\n- \n\n")
	if t.Notes != "" {
		b.WriteString(fmt.Sprintf("*** Review\n- %s\n", t.Notes))
	} else {
		b.WriteString("*** Review\n- \n")
	}

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []journal.Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t, t.Result()))
	}
	return b.String()
}

// dirLabel marks inferred directions so a journal reader can tell them
// from recorded facts.
func dirLabel(r calc.Result) string {
	if !r.Direction.Valid() {
		return "UNRESOLVED"
	}
	if r.Source == calc.Inferred {
		return string(r.Direction) + "?"
	}
	return string(r.Direction)
}
