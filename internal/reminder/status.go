package reminder

import (
	"sort"
	"time"
)

// Derived status values, from most to least urgent.
const (
	StatusLabelOverdue     = "overdue"
	StatusLabelDueToday    = "due-today"
	StatusLabelDueTomorrow = "due-tomorrow"
	StatusLabelDueThisWeek = "due-this-week"
	StatusLabelUpcoming    = "upcoming"
	StatusLabelNoDueDate   = "no-due-date"
	StatusLabelCompleted   = "completed"
)

var priorityRank = map[string]int{
	StatusLabelOverdue:     0,
	StatusLabelDueToday:    1,
	StatusLabelDueTomorrow: 2,
	StatusLabelDueThisWeek: 3,
	StatusLabelUpcoming:    4,
	StatusLabelNoDueDate:   5,
	StatusLabelCompleted:   6,
}

// DaysUntil returns the whole calendar days between now and the due instant,
// both collapsed to their day. Zero means due today, negative means past.
func DaysUntil(due, now time.Time) int {
	return int(Day(due).Sub(Day(now)).Hours() / 24)
}

// StatusOf derives the display status of a reminder relative to now.
func StatusOf(r *Reminder, now time.Time) string {
	if r.IsCompleted {
		return StatusLabelCompleted
	}
	if r.DueAt == nil {
		return StatusLabelNoDueDate
	}
	if r.DueAt.Before(now) {
		return StatusLabelOverdue
	}
	if SameDay(*r.DueAt, now) {
		return StatusLabelDueToday
	}
	days := DaysUntil(*r.DueAt, now)
	switch {
	case days <= 0:
		return StatusLabelDueToday
	case days == 1:
		return StatusLabelDueTomorrow
	case days <= 7:
		return StatusLabelDueThisWeek
	}
	return StatusLabelUpcoming
}

// PriorityRank maps a derived status to its sort rank, lower first.
// Unrecognized statuses sort last.
func PriorityRank(status string) int {
	if rank, ok := priorityRank[status]; ok {
		return rank
	}
	return 99
}

// SortByDueDate orders reminders by raw due instant ascending, stable.
// Reminders without a due date sort last.
func SortByDueDate(list []Reminder) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].DueAt, list[j].DueAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
}

// SortByPriority orders reminders by status priority ascending, stable.
func SortByPriority(list []Reminder, now time.Time) {
	sort.SliceStable(list, func(i, j int) bool {
		return PriorityRank(StatusOf(&list[i], now)) < PriorityRank(StatusOf(&list[j], now))
	})
}

// SortByMinuteOfDay orders reminders by their due time within the day,
// ascending and stable, so ties keep their merged relative order.
func SortByMinuteOfDay(list []Reminder) {
	sort.SliceStable(list, func(i, j int) bool {
		return MinutesOfDay(list[i].DueAt) < MinutesOfDay(list[j].DueAt)
	})
}
