package reminder

import (
	"strings"
	"time"
)

// OccursOn reports whether the reminder is due on the given calendar day
// according to its recurrence rule. The target is normalized to midnight
// first, so callers may pass any instant of the day.
//
// The checks run in a fixed order and the first failing one wins:
// a reminder without a due date never occurs; no recurrence kind produces
// an occurrence on a day strictly before the due day; and a day-granular
// recurrence end (inclusive, never excluding the due day itself) caps the
// series. OccursOn is total — it cannot fail, so one malformed reminder can
// never break a whole listing query.
func OccursOn(r *Reminder, target time.Time) bool {
	if r.DueAt == nil {
		return false
	}
	due := Day(*r.DueAt)
	target = Day(target)

	if target.Before(due) && !SameDay(target, due) {
		return false
	}
	if r.RecurrenceEnd != nil {
		if end := Day(*r.RecurrenceEnd); target.After(end) {
			return false
		}
	}

	switch strings.ToLower(strings.TrimSpace(r.Recurrence)) {
	case RecurrenceDaily:
		return true
	case RecurrenceWeekly:
		if len(r.WeeklyDays) > 0 {
			wd := ISOWeekday(target)
			for _, d := range r.WeeklyDays {
				if d == wd {
					return true
				}
			}
			return false
		}
		return ISOWeekday(target) == ISOWeekday(due)
	case RecurrenceMonthly:
		// Exact day-of-month equality: a reminder anchored on the 31st never
		// occurs in a shorter month.
		return target.Day() == due.Day()
	case RecurrenceYearly:
		return target.Month() == due.Month() && target.Day() == due.Day()
	default:
		// "none", empty and unrecognized values all mean a one-shot reminder.
		return SameDay(target, due)
	}
}
