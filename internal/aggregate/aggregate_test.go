package aggregate_test

import (
	"testing"
	"time"

	"github.com/sk21munashe/vitality-daily-sub000/internal/aggregate"
)

func TestSumOnFiltersByDate(t *testing.T) {
	t.Parallel()

	points := []aggregate.Point{
		{Date: "2026-03-10", Value: 250},
		{Date: "2026-03-10", Value: 500},
		{Date: "2026-03-09", Value: 300},
	}
	if got := aggregate.SumOn(points, "2026-03-10"); got != 750 {
		t.Fatalf("expected 750, got %v", got)
	}
	if got := aggregate.SumOn(points, "2026-03-08"); got != 0 {
		t.Fatalf("expected 0 for empty day, got %v", got)
	}
}

func TestSumInRangeIsInclusive(t *testing.T) {
	t.Parallel()

	points := []aggregate.Point{
		{Date: "2026-03-01", Value: 1},
		{Date: "2026-03-07", Value: 2},
		{Date: "2026-03-08", Value: 4},
	}
	if got := aggregate.SumInRange(points, "2026-03-01", "2026-03-07"); got != 3 {
		t.Fatalf("expected both boundary days included, got %v", got)
	}
}

func TestBucketByDayAlwaysReturnsFixedWidth(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	points := []aggregate.Point{
		{Date: "2026-03-10", Value: 500},
		{Date: "2026-03-08", Value: 250},
		{Date: "2026-03-08", Value: 250},
		{Date: "2026-01-01", Value: 9999}, // outside the window
	}

	buckets := aggregate.BucketByDay(points, 7, today)
	if len(buckets) != 7 {
		t.Fatalf("expected exactly 7 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "2026-03-04" || buckets[6].Label != "2026-03-10" {
		t.Fatalf("unexpected bucket range: %s .. %s", buckets[0].Label, buckets[6].Label)
	}
	var total float64
	for _, b := range buckets {
		total += b.Value
		switch b.Label {
		case "2026-03-08":
			if b.Value != 500 {
				t.Fatalf("expected merged 500 on 03-08, got %v", b.Value)
			}
		case "2026-03-10":
			if b.Value != 500 {
				t.Fatalf("expected 500 on 03-10, got %v", b.Value)
			}
		default:
			if b.Value != 0 {
				t.Fatalf("expected zero bucket on %s, got %v", b.Label, b.Value)
			}
		}
	}
	if total != 1000 {
		t.Fatalf("expected window total 1000, got %v", total)
	}
}

func TestBucketByMonthAveragesPerElapsedDay(t *testing.T) {
	t.Parallel()

	// Feb 2026 has 28 days; today is March 10th so March has 10
	// elapsed days.
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	points := []aggregate.Point{
		{Date: "2026-02-01", Value: 1400},
		{Date: "2026-02-15", Value: 1400},
		{Date: "2026-03-05", Value: 500},
	}

	buckets := aggregate.BucketByMonth(points, 12, today)
	if len(buckets) != 12 {
		t.Fatalf("expected exactly 12 buckets, got %d", len(buckets))
	}
	byLabel := make(map[string]float64, len(buckets))
	for _, b := range buckets {
		byLabel[b.Label] = b.Value
	}
	if got := byLabel["2026-02"]; got != 100 {
		t.Fatalf("expected 2800/28 = 100 for february, got %v", got)
	}
	if got := byLabel["2026-03"]; got != 50 {
		t.Fatalf("expected 500/10 = 50 for march, got %v", got)
	}
	if got := byLabel["2025-04"]; got != 0 {
		t.Fatalf("expected zero for empty month, got %v", got)
	}
}

func TestProgressClampsAndHandlesZeroGoal(t *testing.T) {
	t.Parallel()

	if got := aggregate.Progress(1250, 2000); got != 62.5 {
		t.Fatalf("expected 62.5, got %v", got)
	}
	if got := aggregate.Progress(3000, 2000); got != 100 {
		t.Fatalf("expected clamp to 100, got %v", got)
	}
	if got := aggregate.Progress(500, 0); got != 0 {
		t.Fatalf("zero goal must report 0, got %v", got)
	}
	if got := aggregate.Progress(0, 2000); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestWeekRangeMondayStart(t *testing.T) {
	t.Parallel()

	// 2026-03-11 is a Wednesday.
	wed := time.Date(2026, 3, 11, 12, 0, 0, 0, time.Local)
	start, end := aggregate.WeekRange(wed, time.Monday)
	if start != "2026-03-09" || end != "2026-03-15" {
		t.Fatalf("unexpected week range %s .. %s", start, end)
	}

	// A Monday is its own week start.
	mon := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	start, end = aggregate.WeekRange(mon, time.Monday)
	if start != "2026-03-09" || end != "2026-03-15" {
		t.Fatalf("unexpected week range from monday %s .. %s", start, end)
	}

	// Sunday-start locales shift the window back.
	start, _ = aggregate.WeekRange(wed, time.Sunday)
	if start != "2026-03-08" {
		t.Fatalf("expected sunday start 2026-03-08, got %s", start)
	}
}
