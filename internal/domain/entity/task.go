package entity

import (
	"strings"
	"time"

	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
)

// Status is the task lifecycle state. Exactly two values exist.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// ParseStatus rejects anything outside the two known values.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending:
		return StatusPending, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", domainError.NewFieldValidationError("status", "status must be 'pending' or 'completed'")
	}
}

// Task is the to-do item aggregate. A task belongs to exactly one user;
// the owner never changes after creation.
type Task struct {
	id          TaskID
	userID      UserID
	title       string
	description string
	category    string
	priority    string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTask creates an unsaved task with a temporary placeholder ID and
// status pending. The title must be non-blank; the rest is trimmed free text.
func NewTask(userID UserID, title, description, category, priority string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domainError.NewFieldValidationError("title", "task title is required")
	}

	now := time.Now()
	return &Task{
		id:          newTempTaskID(),
		userID:      userID,
		title:       title,
		description: strings.TrimSpace(description),
		category:    strings.TrimSpace(category),
		priority:    strings.TrimSpace(priority),
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// RestoreTask rehydrates a task from persistence.
func RestoreTask(
	id TaskID,
	userID UserID,
	title, description, category, priority string,
	status Status,
	createdAt, updatedAt time.Time,
) *Task {
	return &Task{
		id:          id,
		userID:      userID,
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Getters
func (t *Task) ID() TaskID           { return t.id }
func (t *Task) UserID() UserID       { return t.userID }
func (t *Task) Title() string        { return t.title }
func (t *Task) Description() string  { return t.description }
func (t *Task) Category() string     { return t.category }
func (t *Task) Priority() string     { return t.priority }
func (t *Task) Status() Status       { return t.status }
func (t *Task) CreatedAt() time.Time { return t.createdAt }
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// Completed reports whether the task has been marked completed.
func (t *Task) Completed() bool {
	return t.status == StatusCompleted
}

// UpdateTitle rejects a blank title; otherwise sets the trimmed value.
func (t *Task) UpdateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return domainError.NewFieldValidationError("title", "task title cannot be empty")
	}
	t.title = title
	t.touch()
	return nil
}

// UpdateDescription trims and sets unconditionally; empty is allowed.
func (t *Task) UpdateDescription(description string) {
	t.description = strings.TrimSpace(description)
	t.touch()
}

func (t *Task) UpdateCategory(category string) {
	t.category = strings.TrimSpace(category)
	t.touch()
}

func (t *Task) UpdatePriority(priority string) {
	t.priority = strings.TrimSpace(priority)
	t.touch()
}

// MarkAsCompleted always bumps updatedAt, even when the status does not
// change.
func (t *Task) MarkAsCompleted() {
	t.status = StatusCompleted
	t.touch()
}

func (t *Task) MarkAsPending() {
	t.status = StatusPending
	t.touch()
}

func (t *Task) touch() {
	t.updatedAt = time.Now()
}
