package reminder

import (
	"errors"
	"strings"
	"time"
)

// ErrBadDate is returned when a date-like string cannot be parsed.
var ErrBadDate = errors.New("unparsable date")

// dayLayouts are the accepted shapes for date input, tried in order. Inputs
// without an explicit offset are taken as UTC.
var dayLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseInstant parses an ISO-8601 instant or plain date string. A trailing
// "Z" means UTC; zone-less input is treated as UTC as well.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrBadDate
	}
	for _, layout := range dayLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadDate
}

// ParseDay parses a date-like string and collapses it to a calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := ParseInstant(s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// Day truncates an instant to 00:00:00 UTC of its calendar day.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two instants fall on the same UTC calendar day.
// This is a dedicated year/month/day check rather than a Before/After
// comparison so residual time-of-day components cannot skew the result.
func SameDay(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.Month() == bu.Month() && au.Day() == bu.Day()
}

// MinutesOfDay returns the minute offset within the UTC day, in [0, 1439].
// A nil instant yields 0, which sorts undated times first on a day view.
func MinutesOfDay(t *time.Time) int {
	if t == nil {
		return 0
	}
	u := t.UTC()
	return u.Hour()*60 + u.Minute()
}

// ISOWeekday returns the weekday numbered Monday=1 .. Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.UTC().Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
