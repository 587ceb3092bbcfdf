package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/713zhao/aireminder/internal/reminder"
	"github.com/713zhao/aireminder/internal/reminder/repository"
)

// CreateInput carries the caller-settable fields for a new reminder.
type CreateInput struct {
	Title               string
	Notes               string
	DueAt               *time.Time
	Recurrence          string
	RecurrenceEnd       *time.Time
	WeeklyDays          []int
	RemindBeforeMinutes int
	SharedWith          []string
}

// UpdateInput enumerates every mutable field with explicit presence: a nil
// pointer means "leave unchanged", the Clear flags distinguish "set to
// nothing" from "omitted" for the nullable instants.
type UpdateInput struct {
	Title               *string
	Notes               *string
	DueAt               *time.Time
	ClearDueAt          bool
	Recurrence          *string
	RecurrenceEnd       *time.Time
	ClearRecurrenceEnd  bool
	WeeklyDays          *[]int
	SharedWith          *[]string
	RemindBeforeMinutes *int
	IsDisabled          *bool
}

// Create inserts a new reminder owned by ownerID with version 1. The title
// must be non-empty after trimming.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (*reminder.Reminder, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.RemindBeforeMinutes <= 0 {
		in.RemindBeforeMinutes = 10
	}
	now := s.now()
	r := &reminder.Reminder{
		Title:               title,
		Notes:               strings.TrimSpace(in.Notes),
		OwnerID:             ownerID,
		SharedWith:          in.SharedWith,
		IsShared:            len(in.SharedWith) > 0,
		DueAt:               in.DueAt,
		Recurrence:          in.Recurrence,
		RecurrenceEnd:       in.RecurrenceEnd,
		WeeklyDays:          in.WeeklyDays,
		RemindBeforeMinutes: in.RemindBeforeMinutes,
		IsCompleted:         false,
		Deleted:             false,
		Version:             1,
		LastModifiedBy:      ownerID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if r.SharedWith == nil {
		r.SharedWith = []string{}
	}
	id, err := s.repo.Insert(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}
	r.ID = id
	return r, nil
}

// Update applies a partial update. Only the owner may edit; every applied
// update bumps the version and stamps updatedAt/lastModifiedBy.
func (s *Service) Update(ctx context.Context, id, userID string, in UpdateInput) (*reminder.Reminder, error) {
	r, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.OwnerID != userID {
		return nil, fmt.Errorf("%w: only the owner can edit a reminder", ErrAccessDenied)
	}

	set := repository.Fields{}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		set["title"] = title
		r.Title = title
	}
	if in.Notes != nil {
		notes := strings.TrimSpace(*in.Notes)
		set["notes"] = notes
		r.Notes = notes
	}
	if in.ClearDueAt {
		set["dueAt"] = nil
		r.DueAt = nil
	} else if in.DueAt != nil {
		set["dueAt"] = *in.DueAt
		r.DueAt = in.DueAt
	}
	if in.Recurrence != nil {
		set["recurrence"] = *in.Recurrence
		r.Recurrence = *in.Recurrence
	}
	if in.ClearRecurrenceEnd {
		set["recurrenceEnd"] = nil
		r.RecurrenceEnd = nil
	} else if in.RecurrenceEnd != nil {
		set["recurrenceEnd"] = *in.RecurrenceEnd
		r.RecurrenceEnd = in.RecurrenceEnd
	}
	if in.WeeklyDays != nil {
		set["weeklyDays"] = *in.WeeklyDays
		r.WeeklyDays = *in.WeeklyDays
	}
	if in.SharedWith != nil {
		shared := *in.SharedWith
		if shared == nil {
			shared = []string{}
		}
		set["sharedWith"] = shared
		set["isShared"] = len(shared) > 0
		r.SharedWith = shared
		r.IsShared = len(shared) > 0
	}
	if in.RemindBeforeMinutes != nil {
		set["remindBeforeMinutes"] = *in.RemindBeforeMinutes
		r.RemindBeforeMinutes = *in.RemindBeforeMinutes
	}
	if in.IsDisabled != nil {
		set["isDisabled"] = *in.IsDisabled
		r.IsDisabled = *in.IsDisabled
	}

	s.stamp(set, r, userID)
	if err := s.repo.Update(ctx, id, set); err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	return r, nil
}

// Delete soft-deletes a reminder. Owner only; the record stays in the store
// but disappears from every listing operation.
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	r, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	if r.OwnerID != userID {
		return fmt.Errorf("%w: only the owner can delete a reminder", ErrAccessDenied)
	}
	now := s.now()
	set := repository.Fields{"deleted": true, "deletedAt": now}
	s.stamp(set, r, userID)
	if err := s.repo.Update(ctx, id, set); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}

// Complete marks a reminder done. The owner and anyone in sharedWith may
// complete; completion never stops future occurrences from being computed.
func (s *Service) Complete(ctx context.Context, id, userID string) (*reminder.Reminder, error) {
	r, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.CanView(userID) {
		return nil, fmt.Errorf("%w: no permission to complete this reminder", ErrAccessDenied)
	}
	now := s.now()
	set := repository.Fields{"isCompleted": true, "completedAt": now}
	s.stamp(set, r, userID)
	r.IsCompleted = true
	r.CompletedAt = &now
	if err := s.repo.Update(ctx, id, set); err != nil {
		return nil, fmt.Errorf("complete reminder: %w", err)
	}
	return r, nil
}

// stamp adds the bookkeeping every mutation carries: updatedAt,
// lastModifiedBy and a version bump of exactly one.
func (s *Service) stamp(set repository.Fields, r *reminder.Reminder, userID string) {
	now := s.now()
	set["updatedAt"] = now
	set["lastModifiedBy"] = userID
	set["version"] = r.Version + 1
	r.UpdatedAt = now
	r.LastModifiedBy = userID
	r.Version++
}
