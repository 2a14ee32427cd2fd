package view

import (
	"time"
)

type Timeframe int

const (
	TimeframeAll       Timeframe = 0
	TimeframeToday     Timeframe = 1
	TimeframeThisWeek  Timeframe = 2
	TimeframeThisMonth Timeframe = 3
	TimeframeLastMonth Timeframe = 4
)

const timeframeCount = 5

func (t Timeframe) String() string {
	switch t {
	case TimeframeAll:
		return "All Time"
	case TimeframeToday:
		return "Today"
	case TimeframeThisWeek:
		return "This Week"
	case TimeframeThisMonth:
		return "This Month"
	case TimeframeLastMonth:
		return "Last Month"
	}

	return "Unknown"
}

// Next cycles to the following timeframe.
func (t Timeframe) Next() Timeframe {
	return (t + 1) % timeframeCount
}

// DateRange returns the inclusive day range of t relative to now. ok is false
// for TimeframeAll.
func (t Timeframe) DateRange(now time.Time) (start, end time.Time, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch t {
	case TimeframeToday:
		return today, today, true
	case TimeframeThisWeek:
		// ISO week starts Monday.
		offset := int(now.Weekday())
		if offset == 0 {
			offset = 7
		}

		return today.AddDate(0, 0, -offset+1), today, true
	case TimeframeThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), today, true
	case TimeframeLastMonth:
		start = time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), true
	}

	return time.Time{}, time.Time{}, false
}
