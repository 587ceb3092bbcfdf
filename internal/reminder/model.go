package reminder

import "time"

// Recurrence kinds accepted on a reminder. Anything else is treated as
// RecurrenceNone when matching.
const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceYearly  = "yearly"
)

// Status filter values accepted by listing operations.
const (
	StatusAll       = "all"
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Reminder is the persistent reminder document. Records are stored in the
// "shared_tasks" collection with an "id" string field (kept separate from
// Mongo's _id so ids stay opaque, stable strings).
type Reminder struct {
	ID    string `json:"id" bson:"id"`
	Title string `json:"title" bson:"title"`
	Notes string `json:"notes,omitempty" bson:"notes,omitempty"`

	OwnerID    string   `json:"ownerId" bson:"ownerId"`
	SharedWith []string `json:"sharedWith" bson:"sharedWith"`
	IsShared   bool     `json:"isShared" bson:"isShared"`

	DueAt         *time.Time `json:"dueAt,omitempty" bson:"dueAt,omitempty"`
	Recurrence    string     `json:"recurrence,omitempty" bson:"recurrence,omitempty"`
	RecurrenceEnd *time.Time `json:"recurrenceEnd,omitempty" bson:"recurrenceEnd,omitempty"`
	// WeeklyDays holds ISO weekday numbers (Monday=1 .. Sunday=7) and is only
	// meaningful for weekly recurrence. Empty means "the weekday of DueAt".
	WeeklyDays []int `json:"weeklyDays,omitempty" bson:"weeklyDays,omitempty"`

	RemindBeforeMinutes int `json:"remindBeforeMinutes" bson:"remindBeforeMinutes"`

	IsCompleted bool       `json:"isCompleted" bson:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`

	IsDisabled    bool       `json:"isDisabled" bson:"isDisabled"`
	DisabledUntil *time.Time `json:"disabledUntil,omitempty" bson:"disabledUntil,omitempty"`

	Deleted   bool       `json:"deleted" bson:"deleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`

	Version        int       `json:"version" bson:"version"`
	LastModifiedBy string    `json:"lastModifiedBy" bson:"lastModifiedBy"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CanView reports whether userID may read or complete the reminder.
func (r *Reminder) CanView(userID string) bool {
	if r.OwnerID == userID {
		return true
	}
	for _, u := range r.SharedWith {
		if u == userID {
			return true
		}
	}
	return false
}

// FilterByStatus keeps reminders matching the given status filter.
// Unknown filters behave like StatusAll.
func FilterByStatus(list []Reminder, status string) []Reminder {
	switch status {
	case StatusPending:
		out := make([]Reminder, 0, len(list))
		for _, r := range list {
			if !r.IsCompleted {
				out = append(out, r)
			}
		}
		return out
	case StatusCompleted:
		out := make([]Reminder, 0, len(list))
		for _, r := range list {
			if r.IsCompleted {
				out = append(out, r)
			}
		}
		return out
	}
	return list
}
