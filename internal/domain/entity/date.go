package entity

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// MonthLayout is the wire format for calendar months.
const MonthLayout = "2006-01"

// DateOf strips the time component, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseMonth parses a YYYY-MM month filter.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}
