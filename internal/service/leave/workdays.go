package leave

import "time"

// WorkdaysBetween counts the weekdays in [start, end] inclusive. Saturdays
// and Sundays contribute nothing, so a range entirely inside one weekend
// counts zero days.
func WorkdaysBetween(start, end time.Time) int {
	if start.After(end) {
		return 0
	}

	days := 0
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

// WeekdaysIn enumerates the weekday dates in [start, end] inclusive, in
// ascending order. Approval uses it to mark attendance day by day.
func WeekdaysIn(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			dates = append(dates, d)
		}
	}
	return dates
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
