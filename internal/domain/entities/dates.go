package entities

import (
	"fmt"
	"time"
)

const isoDate = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD date in UTC.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DaysBetween enumerates every calendar day from startDate to endDate,
// both inclusive, as ISO date strings. endDate before startDate is an error.
func DaysBetween(startDate, endDate string) ([]string, error) {
	from, err := ParseISODate(startDate)
	if err != nil {
		return nil, err
	}
	to, err := ParseISODate(endDate)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, fmt.Errorf("date range %s..%s is reversed", startDate, endDate)
	}

	days := make([]string, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(isoDate))
	}
	return days, nil
}
