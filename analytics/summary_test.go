package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelog/calc"
	"tradelog/journal"
)

func f64(v float64) *float64 { return &v }

func closedAt(d int, hour int) *time.Time {
	ts := time.Date(2026, 1, d, hour, 0, 0, 0, time.UTC)
	return &ts
}

// esTrade is a one-contract ES trade moving the given points off a
// 4500 entry: net = points*50 - 2.10 commission.
func esTrade(id string, points float64, closed *time.Time) journal.Trade {
	return journal.Trade{
		ID:         id,
		Symbol:     "ES",
		Direction:  calc.Long,
		Quantity:   1,
		EntryPrice: 4500,
		ExitPrice:  f64(4500 + points),
		OpenTime:   closed.Add(-time.Hour),
		CloseTime:  closed,
	}
}

func sampleJournal() []journal.Trade {
	return []journal.Trade{
		esTrade("t1", 10, closedAt(5, 11)), // +497.90
		esTrade("t2", -4, closedAt(6, 12)), // -202.10
		esTrade("t3", -8, closedAt(7, 10)), // -402.10
		esTrade("t4", 2, closedAt(8, 9)),   // +97.90
		{ID: "open", Symbol: "ES", Direction: calc.Long, Quantity: 1, EntryPrice: 4520,
			OpenTime: time.Date(2026, 1, 8, 12, 0, 0, 0, time.UTC)},
		{ID: "odd", Symbol: "ZZ", Direction: calc.Long, Quantity: 1, EntryPrice: 100,
			ExitPrice: f64(105), OpenTime: time.Date(2026, 1, 8, 13, 0, 0, 0, time.UTC),
			CloseTime: closedAt(8, 14)},
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := Summarize(sampleJournal())

	assert.Equal(t, 6, s.Trades)
	assert.Equal(t, 1, s.Open)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 4, s.Closed)

	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 2, s.Losses)
	assert.Zero(t, s.Scratches)
	assert.InDelta(t, 50.0, s.WinRatePct, 1e-9)

	assert.InDelta(t, -8.40, s.NetUSD, 1e-9)
	assert.InDelta(t, 595.80, s.GrossProfitUSD, 1e-9)
	assert.InDelta(t, 604.20, s.GrossLossUSD, 1e-9)
	assert.InDelta(t, 8.40, s.CommissionsUSD, 1e-9)

	assert.InDelta(t, 595.80/604.20, s.ProfitFactor, 1e-9)
	assert.InDelta(t, 297.90, s.AvgWinUSD, 1e-9)
	assert.InDelta(t, 302.10, s.AvgLossUSD, 1e-9)
	assert.InDelta(t, -2.10, s.ExpectancyUSD, 1e-9)
	assert.InDelta(t, 391.578, s.StdDevUSD, 1e-3)

	assert.InDelta(t, 497.90, s.BestUSD, 1e-9)
	assert.InDelta(t, -402.10, s.WorstUSD, 1e-9)

	// equity runs 497.90, 295.80, -106.30, -8.40 off a 497.90 peak
	assert.InDelta(t, 604.20, s.MaxDrawdownUSD, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)

	assert.Zero(t, s.Trades)
	assert.Zero(t, s.Closed)
	assert.Zero(t, s.WinRatePct)
	assert.Zero(t, s.ProfitFactor)
	assert.Zero(t, s.ExpectancyUSD)
	assert.Zero(t, s.StdDevUSD)
	assert.Zero(t, s.MaxDrawdownUSD)
}

func TestSummarizeSingleTrade(t *testing.T) {
	t.Parallel()

	s := Summarize([]journal.Trade{esTrade("t1", 10, closedAt(5, 11))})

	assert.Equal(t, 1, s.Closed)
	assert.Equal(t, 1, s.Wins)
	assert.InDelta(t, 100.0, s.WinRatePct, 1e-9)
	assert.InDelta(t, 497.90, s.ExpectancyUSD, 1e-9)
	assert.Zero(t, s.StdDevUSD)
	assert.Zero(t, s.ProfitFactor)
	assert.Zero(t, s.MaxDrawdownUSD)
}

func TestSummarizeAllLosses(t *testing.T) {
	t.Parallel()

	s := Summarize([]journal.Trade{
		esTrade("t1", -4, closedAt(5, 10)),
		esTrade("t2", -2, closedAt(5, 12)),
	})

	assert.Zero(t, s.Wins)
	assert.Equal(t, 2, s.Losses)
	assert.Zero(t, s.WinRatePct)
	assert.Zero(t, s.ProfitFactor)
	assert.Zero(t, s.AvgWinUSD)
	// drawdown from the flat start: 202.10 + 102.10
	assert.InDelta(t, 304.20, s.MaxDrawdownUSD, 1e-9)
}

func TestSummarizeScratch(t *testing.T) {
	t.Parallel()

	// 0.042 points on one ES contract grosses exactly the commission
	s := Summarize([]journal.Trade{esTrade("t1", 0.042, closedAt(5, 10))})

	assert.Equal(t, 1, s.Closed)
	assert.Zero(t, s.Wins)
	assert.Zero(t, s.Losses)
	assert.Equal(t, 1, s.Scratches)
	assert.Zero(t, s.WinRatePct)
}

func TestGroupByDay(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		esTrade("t1", 10, closedAt(5, 11)),
		esTrade("t2", -4, closedAt(5, 13)),
		esTrade("t3", -8, closedAt(6, 10)),
		esTrade("t4", 2, closedAt(7, 9)),
		{ID: "open", Symbol: "ES", Direction: calc.Long, Quantity: 1, EntryPrice: 4520,
			OpenTime: time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)},
	}

	buckets := GroupByDay(trades, nil)
	require.Len(t, buckets, 3)

	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), buckets[0].Day)
	assert.Equal(t, 2, buckets[0].Trades)
	assert.Equal(t, 1, buckets[0].Wins)
	assert.Equal(t, 1, buckets[0].Losses)
	assert.InDelta(t, 295.80, buckets[0].NetUSD, 1e-9)

	assert.Equal(t, 1, buckets[1].Trades)
	assert.InDelta(t, -402.10, buckets[1].NetUSD, 1e-9)

	assert.Equal(t, 1, buckets[2].Trades)
	assert.InDelta(t, 97.90, buckets[2].NetUSD, 1e-9)
}

func TestGroupByDayLocation(t *testing.T) {
	t.Parallel()

	// 03:00 UTC is still the previous evening in New York
	trades := []journal.Trade{
		esTrade("t1", 10, closedAt(6, 3)),
		esTrade("t2", -4, closedAt(6, 15)),
	}

	utc := GroupByDay(trades, nil)
	require.Len(t, utc, 1)
	assert.Equal(t, 2, utc[0].Trades)

	ny := time.FixedZone("EST", -5*3600)
	local := GroupByDay(trades, ny)
	require.Len(t, local, 2)
	assert.Equal(t, 1, local[0].Trades)
	assert.Equal(t, 1, local[1].Trades)
}
