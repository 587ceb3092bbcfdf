package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/713zhao/aireminder/internal/reminder"
)

// MemoryRepo is an in-memory repository used for unit tests and local runs
// without a MongoDB. Listing order is insertion order, matching the
// createdAt sort of the Mongo repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*reminder.Reminder
	order []string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*reminder.Reminder)}
}

func (m *MemoryRepo) Insert(ctx context.Context, r *reminder.Reminder) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	cp := *r
	m.store[r.ID] = &cp
	m.order = append(m.order, r.ID)
	return r.ID, nil
}

func (m *MemoryRepo) GetByID(ctx context.Context, id string) (*reminder.Reminder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *MemoryRepo) ListByOwner(ctx context.Context, ownerID, status string) ([]reminder.Reminder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []reminder.Reminder{}
	for _, id := range m.order {
		r := m.store[id]
		if r.Deleted || r.OwnerID != ownerID {
			continue
		}
		switch status {
		case reminder.StatusPending:
			if r.IsCompleted {
				continue
			}
		case reminder.StatusCompleted:
			if !r.IsCompleted {
				continue
			}
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *MemoryRepo) ListSharedWith(ctx context.Context, userID string) ([]reminder.Reminder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []reminder.Reminder{}
	for _, id := range m.order {
		r := m.store[id]
		if r.Deleted {
			continue
		}
		for _, u := range r.SharedWith {
			if u == userID {
				out = append(out, *r)
				break
			}
		}
	}
	return out, nil
}

func (m *MemoryRepo) Update(ctx context.Context, id string, set Fields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range set {
		applyField(r, k, v)
	}
	return nil
}

func applyField(r *reminder.Reminder, key string, v interface{}) {
	switch key {
	case "title":
		r.Title, _ = v.(string)
	case "notes":
		r.Notes, _ = v.(string)
	case "dueAt":
		r.DueAt = asTimePtr(v)
	case "recurrence":
		r.Recurrence, _ = v.(string)
	case "recurrenceEnd":
		r.RecurrenceEnd = asTimePtr(v)
	case "weeklyDays":
		if days, ok := v.([]int); ok {
			r.WeeklyDays = days
		} else {
			r.WeeklyDays = nil
		}
	case "sharedWith":
		if users, ok := v.([]string); ok {
			r.SharedWith = users
		} else {
			r.SharedWith = nil
		}
	case "isShared":
		r.IsShared, _ = v.(bool)
	case "remindBeforeMinutes":
		r.RemindBeforeMinutes, _ = v.(int)
	case "isCompleted":
		r.IsCompleted, _ = v.(bool)
	case "completedAt":
		r.CompletedAt = asTimePtr(v)
	case "isDisabled":
		r.IsDisabled, _ = v.(bool)
	case "disabledUntil":
		r.DisabledUntil = asTimePtr(v)
	case "deleted":
		r.Deleted, _ = v.(bool)
	case "deletedAt":
		r.DeletedAt = asTimePtr(v)
	case "updatedAt":
		if t := asTimePtr(v); t != nil {
			r.UpdatedAt = *t
		}
	case "lastModifiedBy":
		r.LastModifiedBy, _ = v.(string)
	case "version":
		r.Version, _ = v.(int)
	}
}

func asTimePtr(v interface{}) *time.Time {
	switch t := v.(type) {
	case *time.Time:
		return t
	case time.Time:
		return &t
	}
	return nil
}
