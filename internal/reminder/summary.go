package reminder

import (
	"math"
	"time"
)

// Summary holds aggregate counts over a user's merged reminder set.
type Summary struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	Overdue        int     `json:"overdue"`
	DueToday       int     `json:"dueToday"`
	Upcoming       int     `json:"upcoming"`
	CompletionRate float64 `json:"completionRate"`
}

// Summarize derives counts from an already merged, non-deleted reminder set.
// Overdue and dueToday intentionally overlap for reminders due earlier today.
func Summarize(list []Reminder, now time.Time) Summary {
	var s Summary
	s.Total = len(list)
	for i := range list {
		r := &list[i]
		if r.IsCompleted {
			s.Completed++
		} else {
			s.Pending++
			if r.DueAt != nil {
				if r.DueAt.Before(now) {
					s.Overdue++
				} else {
					s.Upcoming++
				}
			}
		}
		if r.DueAt != nil && SameDay(*r.DueAt, now) && !r.IsCompleted {
			s.DueToday++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = math.Round(float64(s.Completed)/float64(s.Total)*1000) / 10
	}
	return s
}
