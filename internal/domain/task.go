package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Task-specific validation errors
var (
	// ErrTaskIDEmpty is returned when a task ID is empty or nil.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTaskOwnerIDEmpty is returned when a task's owner ID is empty or nil.
	ErrTaskOwnerIDEmpty = errors.New("task owner ID cannot be empty")

	// ErrTaskTitleEmpty is returned when a task's title is empty.
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")

	// ErrTaskStatusInvalid is returned when a task's status is not one of
	// the defined TaskStatus values.
	ErrTaskStatusInvalid = errors.New("invalid task status")

	// ErrTaskPriorityInvalid is returned when a task's priority is not one of
	// the defined TaskPriority values.
	ErrTaskPriorityInvalid = errors.New("invalid task priority")
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// IsValid reports whether s is one of the defined task statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// TaskPriority represents the urgency level of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// IsValid reports whether p is one of the defined task priorities.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task represents a single unit of work owned by a user.
// DueDate is optional; a nil DueDate means the task has no deadline.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	OwnerID     uuid.UUID    `json:"owner_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	IsActive    bool         `json:"is_active"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user.
// It generates a new UUID for the task ID, marks the task active with
// PENDING status, and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewTask(ownerID uuid.UUID, title, description string, priority TaskPriority, dueDate *time.Time) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      TaskStatusPending,
		Priority:    priority,
		IsActive:    true,
		DueDate:     dueDate,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.OwnerID == uuid.Nil {
		return ErrTaskOwnerIDEmpty
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if !t.Status.IsValid() {
		return ErrTaskStatusInvalid
	}

	if !t.Priority.IsValid() {
		return ErrTaskPriorityInvalid
	}

	return nil
}

// Update applies new field values to the task and bumps the UpdatedAt
// timestamp. Returns an error if the updated task fails validation, in
// which case the task is left unchanged.
func (t *Task) Update(title, description string, status TaskStatus, priority TaskPriority, isActive bool, dueDate *time.Time) error {
	orig := *t

	t.Title = title
	t.Description = description
	t.Status = status
	t.Priority = priority
	t.IsActive = isActive
	t.DueDate = dueDate

	if err := t.Validate(); err != nil {
		*t = orig
		return err
	}

	t.UpdatedAt = time.Now().UTC()
	return nil
}
