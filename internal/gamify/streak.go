// Package gamify implements the streak, points, and achievement
// bookkeeping layered over the record store.
package gamify

import (
	"time"

	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
)

// StreakTransition returns the streak value after a visit on today
// given the previous visit date. Both dates use the store's
// "2006-01-02" layout.
//
//	gap > 1 day   -> streak broken, reset to 0
//	gap == 1 day  -> streak continues, +1
//	same day      -> unchanged
//	no last visit -> unchanged (first run is not credited)
//
// An unparseable last-visit marker is treated as a broken streak.
func StreakTransition(lastVisit, today string, streak int) int {
	if lastVisit == "" {
		return streak
	}
	last, err := time.ParseInLocation(model.DateLayout, lastVisit, time.Local)
	if err != nil {
		return 0
	}
	now, err := time.ParseInLocation(model.DateLayout, today, time.Local)
	if err != nil {
		return streak
	}
	switch days := calendarDaysBetween(last, now); {
	case days > 1:
		return 0
	case days == 1:
		return streak + 1
	default:
		return streak
	}
}

func calendarDaysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.Local)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.Local)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
