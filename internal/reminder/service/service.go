package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/713zhao/aireminder/internal/reminder"
	"github.com/713zhao/aireminder/internal/reminder/repository"
)

var (
	ErrNotFound     = errors.New("reminder not found")
	ErrAccessDenied = errors.New("access denied")
	ErrValidation   = errors.New("validation failed")
	ErrInvalidDate  = errors.New("invalid date format")
)

// Sort modes accepted by GetUpcoming.
const (
	SortByDueDate  = "dueDate"
	SortByPriority = "priority"
)

// Service is the query and mutation engine over the reminder store. All
// computation (normalization, recurrence matching, merging, sorting,
// summarizing) happens in-process on every call; only the store round-trips
// can fail or block, and their failures propagate to the caller.
type Service struct {
	repo repository.Repository
	now  func() time.Time
}

func New(repo repository.Repository) *Service {
	return &Service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// GetAll returns the user's own non-deleted reminders filtered by status
// ("pending", "completed" or "all"). Pending includes reminders whose
// completion flag was never set.
func (s *Service) GetAll(ctx context.Context, userID, status string) ([]reminder.Reminder, error) {
	list, err := s.repo.ListByOwner(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("fetch reminders: %w", err)
	}
	return list, nil
}

// GetForDate returns own plus shared reminders occurring on the given day,
// sorted by due time within the day. The date string must normalize to a
// calendar day or ErrInvalidDate is returned.
func (s *Service) GetForDate(ctx context.Context, userID, date string, includeCompleted bool) ([]reminder.Reminder, error) {
	day, err := reminder.ParseDay(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return s.forDay(ctx, userID, day, includeCompleted)
}

// GetToday is GetForDate for the current calendar day.
func (s *Service) GetToday(ctx context.Context, userID string, includeCompleted bool) ([]reminder.Reminder, error) {
	return s.forDay(ctx, userID, reminder.Day(s.now()), includeCompleted)
}

func (s *Service) forDay(ctx context.Context, userID string, day time.Time, includeCompleted bool) ([]reminder.Reminder, error) {
	merged, err := s.mergedSet(ctx, userID, includeCompleted)
	if err != nil {
		return nil, err
	}
	out := merged[:0:0]
	for i := range merged {
		if reminder.OccursOn(&merged[i], day) {
			out = append(out, merged[i])
		}
	}
	reminder.SortByMinuteOfDay(out)
	return out, nil
}

// GetUpcoming expands recurrence over the next windowDays days starting
// today and unions the per-day matches, keeping the first-seen copy of each
// id across day offsets. sortBy is "dueDate" (raw due instant ascending,
// undated last) or "priority" (status rank ascending).
func (s *Service) GetUpcoming(ctx context.Context, userID string, windowDays int, sortBy string, includeCompleted bool) ([]reminder.Reminder, error) {
	if windowDays <= 0 {
		windowDays = 7
	}
	merged, err := s.mergedSet(ctx, userID, includeCompleted)
	if err != nil {
		return nil, err
	}

	today := reminder.Day(s.now())
	seen := make(map[string]struct{}, len(merged))
	out := []reminder.Reminder{}
	for offset := 0; offset < windowDays; offset++ {
		day := today.AddDate(0, 0, offset)
		for i := range merged {
			r := &merged[i]
			if _, ok := seen[r.ID]; ok {
				continue
			}
			if reminder.OccursOn(r, day) {
				seen[r.ID] = struct{}{}
				out = append(out, *r)
			}
		}
	}

	switch sortBy {
	case SortByDueDate:
		reminder.SortByDueDate(out)
	default:
		reminder.SortByPriority(out, s.now())
	}
	return out, nil
}

// GetOverdue returns pending own plus shared reminders whose due instant is
// strictly in the past.
func (s *Service) GetOverdue(ctx context.Context, userID string) ([]reminder.Reminder, error) {
	merged, err := s.mergedSet(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := merged[:0:0]
	for _, r := range merged {
		if r.DueAt != nil && r.DueAt.Before(now) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Search matches query case-insensitively against title or notes of the
// user's own reminders. limit <= 0 means no truncation.
func (s *Service) Search(ctx context.Context, userID, query, status string, limit int) ([]reminder.Reminder, error) {
	list, err := s.GetAll(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	if q != "" {
		matched := list[:0:0]
		for _, r := range list {
			if strings.Contains(strings.ToLower(r.Title), q) ||
				strings.Contains(strings.ToLower(r.Notes), q) {
				matched = append(matched, r)
			}
		}
		list = matched
	}
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// GetByID fetches one reminder. Soft-deleted records read as not found;
// visibility requires ownership or membership in sharedWith.
func (s *Service) GetByID(ctx context.Context, id, userID string) (*reminder.Reminder, error) {
	r, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.CanView(userID) {
		return nil, ErrAccessDenied
	}
	return r, nil
}

// Summarize derives aggregate counts over the user's merged own plus shared
// non-deleted set.
func (s *Service) Summarize(ctx context.Context, userID string) (reminder.Summary, error) {
	merged, err := s.mergedSet(ctx, userID, true)
	if err != nil {
		return reminder.Summary{}, err
	}
	return reminder.Summarize(merged, s.now()), nil
}

// GetShared returns reminders other users shared into this user.
func (s *Service) GetShared(ctx context.Context, userID string) ([]reminder.Reminder, error) {
	list, err := s.repo.ListSharedWith(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch shared reminders: %w", err)
	}
	return list, nil
}

// mergedSet fetches the own and shared sets, applies the completion filter
// to both, and merges them with own ordering first.
func (s *Service) mergedSet(ctx context.Context, userID string, includeCompleted bool) ([]reminder.Reminder, error) {
	status := reminder.StatusPending
	if includeCompleted {
		status = reminder.StatusAll
	}
	own, err := s.repo.ListByOwner(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("fetch reminders: %w", err)
	}
	shared, err := s.repo.ListSharedWith(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch shared reminders: %w", err)
	}
	shared = reminder.FilterByStatus(shared, status)
	return reminder.MergeByID(own, shared), nil
}

func (s *Service) fetch(ctx context.Context, id string) (*reminder.Reminder, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch reminder: %w", err)
	}
	if r.Deleted {
		return nil, ErrNotFound
	}
	return r, nil
}
