package reminder

import "time"

const (
	dateLayout     = "Jan 02, 2006"
	dateTimeLayout = "Jan 02, 2006 03:04 PM"
)

// View is the display shape handed to API consumers: raw instants are
// rendered as friendly strings and the status is pre-derived.
type View struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Notes       string   `json:"notes"`
	OwnerID     string   `json:"ownerId"`
	Status      string   `json:"status"`
	DueDate     string   `json:"dueDate,omitempty"`
	DueDateTime string   `json:"dueDateTime,omitempty"`
	DaysUntil   *int     `json:"daysUntil,omitempty"`
	IsCompleted bool     `json:"isCompleted"`
	CompletedAt string   `json:"completedAt,omitempty"`
	Recurrence  string   `json:"recurrence"`
	IsShared    bool     `json:"isShared"`
	SharedWith  []string `json:"sharedWith"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	IsDisabled  bool     `json:"isDisabled"`
	Version     int      `json:"version"`
}

// FormatView converts a reminder into its display shape relative to now.
func FormatView(r *Reminder, now time.Time) View {
	v := View{
		ID:          r.ID,
		Title:       r.Title,
		Notes:       r.Notes,
		OwnerID:     r.OwnerID,
		Status:      StatusOf(r, now),
		IsCompleted: r.IsCompleted,
		Recurrence:  r.Recurrence,
		IsShared:    r.IsShared,
		SharedWith:  r.SharedWith,
		IsDisabled:  r.IsDisabled,
		Version:     r.Version,
	}
	if v.Recurrence == "" {
		v.Recurrence = RecurrenceNone
	}
	if v.SharedWith == nil {
		v.SharedWith = []string{}
	}
	if r.DueAt != nil {
		v.DueDate = r.DueAt.UTC().Format(dateLayout)
		v.DueDateTime = r.DueAt.UTC().Format(dateTimeLayout)
		days := DaysUntil(*r.DueAt, now)
		v.DaysUntil = &days
	}
	if r.CompletedAt != nil {
		v.CompletedAt = r.CompletedAt.UTC().Format(dateTimeLayout)
	}
	if !r.CreatedAt.IsZero() {
		v.CreatedAt = r.CreatedAt.UTC().Format(dateTimeLayout)
	}
	return v
}

// FormatViews maps FormatView over a reminder list.
func FormatViews(list []Reminder, now time.Time) []View {
	out := make([]View, 0, len(list))
	for i := range list {
		out = append(out, FormatView(&list[i], now))
	}
	return out
}
