package utils

import (
	"fmt"
	"strings"
	"time"
)

// All booking dates are calendar days pinned to IST (UTC+5:30) so date-only
// comparisons come out the same no matter where the server runs.
var IST = time.FixedZone("IST", 5*3600+30*60)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into midnight IST.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.ParseInLocation(DateLayout, s, IST)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD in IST.
func FormatDate(t time.Time) string {
	return t.In(IST).Format(DateLayout)
}

// Today returns the current calendar day at midnight IST.
func Today() time.Time {
	now := time.Now().In(IST)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, IST)
}

// Nights is the whole-day difference between check-in and check-out.
// Returns 0 when checkOut is not after checkIn.
func Nights(checkIn, checkOut time.Time) int {
	ci := dateOnly(checkIn)
	co := dateOnly(checkOut)
	if !co.After(ci) {
		return 0
	}
	return int(co.Sub(ci).Hours() / 24)
}

// NextDay advances a date by one calendar day (used to auto-bump check-out
// when check-in moves past it).
func NextDay(t time.Time) time.Time {
	d := dateOnly(t)
	return d.AddDate(0, 0, 1)
}

// DateRange lists every day string in [start, end) in wire format.
func DateRange(start, end time.Time) []string {
	var out []string
	for d := dateOnly(start); d.Before(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(DateLayout))
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	it := t.In(IST)
	return time.Date(it.Year(), it.Month(), it.Day(), 0, 0, 0, 0, IST)
}
