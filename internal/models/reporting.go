package models

import "time"

// PreviousMonthWindow returns the half-open interval covering the calendar
// month before the one containing now, in now's location:
// [first day of previous month 00:00, first day of current month 00:00).
func PreviousMonthWindow(now time.Time) (start, end time.Time) {
	end = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start = end.AddDate(0, -1, 0)
	return start, end
}
