package domain

import (
	"errors"
	"time"
)

// DateLayout is the key format of every per-day map. Zero-padded, so string
// order matches chronological order.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate = errors.New("invalid date (must be YYYY-MM-DD)")
)

// CivilDate strips the clock and zone from t, keeping the calendar date as
// seen in t's own location. The result is midnight UTC so day arithmetic
// never crosses a DST transition.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey formats t's calendar date as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey parses a YYYY-MM-DD key into a civil date. Anything that does
// not format back to the same string is rejected.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if t.Format(DateLayout) != s {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// NextDay and PrevDay step one calendar day on a civil date.
func NextDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, time.UTC)
}

func PrevDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day()-1, 0, 0, 0, 0, time.UTC)
}

// StartOfYear returns January 1 of today's year.
func StartOfYear(today time.Time) time.Time {
	return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}
