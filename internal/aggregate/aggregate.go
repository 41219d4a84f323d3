// Package aggregate holds the pure rollup functions behind the
// dashboard: daily sums, inclusive date-range sums, fixed-width day
// buckets for charts, and clamped goal progress. Everything operates
// on Point projections so the functions stay independent of the
// concrete log types.
package aggregate

import (
	"time"

	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
)

// Point is one record's contribution to a metric on a calendar date.
type Point struct {
	Date  string
	Value float64
}

// Bucket is one chart slot. Label is a date ("2006-01-02") for day
// buckets and a month ("2006-01") for month buckets.
type Bucket struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

func SumOn(points []Point, date string) float64 {
	var total float64
	for _, p := range points {
		if p.Date == date {
			total += p.Value
		}
	}
	return total
}

func CountOn(points []Point, date string) int {
	var n int
	for _, p := range points {
		if p.Date == date {
			n++
		}
	}
	return n
}

// SumInRange sums points whose date falls inside [from, to] inclusive.
// Dates in the store's layout compare correctly as strings.
func SumInRange(points []Point, from, to string) float64 {
	var total float64
	for _, p := range points {
		if p.Date >= from && p.Date <= to {
			total += p.Value
		}
	}
	return total
}

// BucketByDay returns exactly days buckets ending on today, one per
// calendar day in chronological order. Days with no points contribute
// a zero bucket rather than being omitted; the chart layer depends on
// the fixed width.
func BucketByDay(points []Point, days int, today time.Time) []Bucket {
	if days <= 0 {
		return nil
	}
	buckets := make([]Bucket, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i-days+1).Format(model.DateLayout)
		buckets[i] = Bucket{Label: date}
		index[date] = i
	}
	for _, p := range points {
		if i, ok := index[p.Date]; ok {
			buckets[i].Value += p.Value
		}
	}
	return buckets
}

// BucketByMonth returns exactly months buckets ending on the current
// month. Each bucket holds the month's total divided by its elapsed
// days (day-of-month for the current month, full length for past
// months) so months of different lengths stay comparable.
func BucketByMonth(points []Point, months int, today time.Time) []Bucket {
	if months <= 0 {
		return nil
	}
	buckets := make([]Bucket, months)
	index := make(map[string]int, months)
	elapsed := make([]float64, months)
	for i := 0; i < months; i++ {
		m := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, i-months+1, 0)
		label := m.Format("2006-01")
		buckets[i] = Bucket{Label: label}
		index[label] = i
		if i == months-1 {
			elapsed[i] = float64(today.Day())
		} else {
			elapsed[i] = float64(daysInMonth(m))
		}
	}
	for _, p := range points {
		if len(p.Date) < 7 {
			continue
		}
		if i, ok := index[p.Date[:7]]; ok {
			buckets[i].Value += p.Value
		}
	}
	for i := range buckets {
		if elapsed[i] > 0 {
			buckets[i].Value /= elapsed[i]
		}
	}
	return buckets
}

func daysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}

// Progress is the clamped goal percentage in [0, 100]. A goal of zero
// or less means "no goal" and reports 0 rather than dividing.
func Progress(current, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	pct := 100 * current / goal
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// WeekRange returns the inclusive [start, end] dates of the week
// containing t, where the week begins on weekStart.
func WeekRange(t time.Time, weekStart time.Weekday) (string, string) {
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	start := t.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return start.Format(model.DateLayout), end.Format(model.DateLayout)
}
