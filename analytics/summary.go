// Package analytics aggregates journal trades into the numbers the
// summary cards and calendar views show.
package analytics

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"tradelog/journal"
)

// Summary aggregates the realized side of a journal. Open positions
// and trades the engine cannot value (unknown market, broken fields)
// are counted but kept out of the P&L stats.
type Summary struct {
	Trades  int
	Open    int
	Closed  int
	Skipped int

	Wins       int
	Losses     int
	Scratches  int
	WinRatePct float64

	NetUSD         float64
	GrossProfitUSD float64
	GrossLossUSD   float64 // positive magnitude
	CommissionsUSD float64

	ProfitFactor  float64 // 0 when there are no losses to divide by
	AvgWinUSD     float64
	AvgLossUSD    float64 // positive magnitude
	ExpectancyUSD float64
	StdDevUSD     float64

	BestUSD  float64
	WorstUSD float64

	// Largest peak-to-trough drop of the realized equity curve, in
	// close order.
	MaxDrawdownUSD float64
}

// pnlClass buckets a net P&L at cent resolution: +1 win, -1 loss,
// 0 scratch. Classification matches what the display rounding shows.
func pnlClass(net float64) int {
	switch c := math.Round(net * 100); {
	case c > 0:
		return 1
	case c < 0:
		return -1
	default:
		return 0
	}
}

// Summarize folds a journal into one Summary.
func Summarize(trades []journal.Trade) Summary {
	s := Summary{Trades: len(trades)}

	type realized struct {
		at  time.Time
		net float64
	}
	var (
		curve []realized
		nets  []float64
	)

	for _, t := range trades {
		if t.Open() {
			s.Open++
			continue
		}
		r := t.Result()
		if !r.Valid {
			s.Skipped++
			continue
		}

		s.Closed++
		net := r.PnLNetUSD
		nets = append(nets, net)
		curve = append(curve, realized{at: t.When(), net: net})
		s.NetUSD += net
		s.CommissionsUSD += r.CommissionUSD

		switch pnlClass(net) {
		case 1:
			s.Wins++
			s.GrossProfitUSD += net
		case -1:
			s.Losses++
			s.GrossLossUSD += -net
		default:
			s.Scratches++
		}
	}

	if s.Closed == 0 {
		return s
	}

	s.WinRatePct = float64(s.Wins) / float64(s.Closed) * 100
	if s.GrossLossUSD > 0 {
		s.ProfitFactor = s.GrossProfitUSD / s.GrossLossUSD
	}
	if s.Wins > 0 {
		s.AvgWinUSD = s.GrossProfitUSD / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLossUSD = s.GrossLossUSD / float64(s.Losses)
	}
	s.ExpectancyUSD = stat.Mean(nets, nil)
	if len(nets) > 1 {
		s.StdDevUSD = stat.StdDev(nets, nil)
	}

	s.BestUSD, s.WorstUSD = nets[0], nets[0]
	for _, n := range nets[1:] {
		if n > s.BestUSD {
			s.BestUSD = n
		}
		if n < s.WorstUSD {
			s.WorstUSD = n
		}
	}

	sort.SliceStable(curve, func(i, j int) bool { return curve[i].at.Before(curve[j].at) })
	var equity, peak, dd float64
	for _, c := range curve {
		equity += c.net
		if equity > peak {
			peak = equity
		}
		if d := peak - equity; d > dd {
			dd = d
		}
	}
	s.MaxDrawdownUSD = dd

	return s
}
