package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/filter"
)

// Page bounds a task listing window.
type Page struct {
	Limit  int
	Offset int
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update saves changes to an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	// Returns validation errors from the domain Task if data is invalid.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves the page of tasks matching the criteria, ordered by
	// creation time descending, along with the total number of matching
	// tasks across all pages. Unset criteria dimensions do not constrain
	// the result.
	List(ctx context.Context, criteria filter.Criteria, page Page) ([]*domain.Task, int64, error)

	// WithTx returns a new TaskStore bound to the provided transaction,
	// allowing multiple operations to execute atomically. The transaction
	// is created and managed by the caller.
	WithTx(tx *sql.Tx) TaskStore
}
