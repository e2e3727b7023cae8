package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/filter"
	"github.com/taskdeck/taskdeck/internal/platform/logger"
	"github.com/taskdeck/taskdeck/internal/store"
)

// Listing window bounds applied by ListTasks.
const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TaskService coordinates task operations between the API layer and the
// task store.
type TaskService struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
// Returns an error if any dependency is nil.
func NewTaskService(tasks store.TaskStore, log *slog.Logger) (*TaskService, error) {
	if tasks == nil {
		return nil, errors.New("task store cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &TaskService{
		tasks:  tasks,
		logger: log.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask creates and persists a new task for the given owner.
func (s *TaskService) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	title, description string,
	priority domain.TaskPriority,
	dueDate *time.Time,
) (*domain.Task, error) {
	task, err := domain.NewTask(ownerID, title, description, priority, dueDate)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTask retrieves a single task by ID.
// Returns store.ErrTaskNotFound if it does not exist.
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// UpdateTask applies the given field values to an existing task and
// persists the result. Returns store.ErrTaskNotFound if it does not exist
// and domain validation errors if the new values are invalid.
func (s *TaskService) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	title, description string,
	status domain.TaskStatus,
	priority domain.TaskPriority,
	isActive bool,
	dueDate *time.Time,
) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task for update: %w", err)
	}

	if err := task.Update(title, description, status, priority, isActive, dueDate); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task permanently.
// Returns store.ErrTaskNotFound if it does not exist.
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ListTasks returns the page of tasks matching the criteria, the total
// match count, and the page window actually applied. The criteria are
// normalized first, and the page limit is clamped to [1, maxPageLimit]
// with a default of defaultPageLimit; callers echoing pagination metadata
// must use the returned page, not the one they passed in.
func (s *TaskService) ListTasks(
	ctx context.Context,
	criteria filter.Criteria,
	page store.Page,
) ([]*domain.Task, int64, store.Page, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if page.Limit <= 0 {
		page.Limit = defaultPageLimit
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}
	if page.Offset < 0 {
		page.Offset = 0
	}

	tasks, total, err := s.tasks.List(ctx, criteria.Normalize(), page)
	if err != nil {
		return nil, 0, page, fmt.Errorf("failed to list tasks: %w", err)
	}

	log.Debug("listed tasks",
		slog.Int("count", len(tasks)),
		slog.Int64("total", total),
		slog.Int("limit", page.Limit),
		slog.Int("offset", page.Offset))
	return tasks, total, page, nil
}
