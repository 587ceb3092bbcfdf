package repository

import (
	"context"
	"errors"

	"github.com/713zhao/aireminder/internal/reminder"
)

// ErrNotFound is returned when no reminder exists for the given id.
var ErrNotFound = errors.New("reminder not found")

// Fields is a partial-update payload keyed by stored field name, applied as
// a single $set-style write against one document.
type Fields map[string]interface{}

// Repository defines persistence operations for reminders. Listing methods
// exclude soft-deleted records; GetByID returns them so callers decide the
// audit vs. not-found semantics.
type Repository interface {
	Insert(ctx context.Context, r *reminder.Reminder) (string, error)
	GetByID(ctx context.Context, id string) (*reminder.Reminder, error)
	ListByOwner(ctx context.Context, ownerID, status string) ([]reminder.Reminder, error)
	ListSharedWith(ctx context.Context, userID string) ([]reminder.Reminder, error)
	Update(ctx context.Context, id string, set Fields) error
}
