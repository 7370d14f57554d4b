package analytics

import (
	"sort"
	"time"

	"tradelog/journal"
)

// DayBucket is one calendar day of realized trading.
type DayBucket struct {
	Day    time.Time
	Trades int
	Wins   int
	Losses int
	NetUSD float64
}

// GroupByDay buckets closed, computable trades by the calendar day they
// were realized in loc. A nil location buckets in UTC. Buckets come
// back in day order.
func GroupByDay(trades []journal.Trade, loc *time.Location) []DayBucket {
	if loc == nil {
		loc = time.UTC
	}

	byDay := map[time.Time]*DayBucket{}
	for _, t := range trades {
		if t.Open() {
			continue
		}
		r := t.Result()
		if !r.Valid {
			continue
		}

		at := t.When().In(loc)
		day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, loc)
		b := byDay[day]
		if b == nil {
			b = &DayBucket{Day: day}
			byDay[day] = b
		}

		b.Trades++
		b.NetUSD += r.PnLNetUSD
		switch pnlClass(r.PnLNetUSD) {
		case 1:
			b.Wins++
		case -1:
			b.Losses++
		}
	}

	out := make([]DayBucket, 0, len(byDay))
	for _, b := range byDay {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}
