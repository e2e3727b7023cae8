package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/filter"
	"github.com/taskdeck/taskdeck/internal/platform/logger"
	"github.com/taskdeck/taskdeck/internal/redact"
	"github.com/taskdeck/taskdeck/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction
// managed by the caller. If logger is nil, the default logger is used.
func NewPostgresTaskStore(db store.DBTX, log *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{db: tx, logger: s.logger}
}

// Create implements store.TaskStore.Create
// Returns store.ErrInvalidEntity if the owner does not exist.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", task.ID.String()))
		return err
	}

	query := `
		INSERT INTO tasks (id, owner_id, title, description, status, priority, is_active, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.IsActive,
		task.DueDate,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("owner does not exist for new task",
				slog.String("task_id", task.ID.String()),
				slog.String("owner_id", task.OwnerID.String()))
			return fmt.Errorf("%w: owner with ID %s not found",
				store.ErrInvalidEntity, task.OwnerID)
		}

		log.Error("failed to create task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", task.ID.String()))
		return err
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("owner_id", task.OwnerID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, title, description, status, priority, is_active, due_date, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return nil, err
	}

	return task, nil
}

// Update implements store.TaskStore.Update
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", task.ID.String()))
		return err
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, priority = $4, is_active = $5, due_date = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.IsActive,
		task.DueDate,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", task.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", task.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("task not found for update", slog.String("task_id", task.ID.String()))
		return store.ErrTaskNotFound
	}

	log.Info("task updated",
		slog.String("task_id", task.ID.String()),
		slog.String("status", string(task.Status)))
	return nil
}

// Delete implements store.TaskStore.Delete
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("task not found for delete", slog.String("task_id", id.String()))
		return store.ErrTaskNotFound
	}

	log.Info("task deleted", slog.String("task_id", id.String()))
	return nil
}

// List implements store.TaskStore.List
// The criteria compile to a single WHERE clause; unset dimensions add no
// constraint. Results are ordered by creation time descending and the
// total counts matches across all pages.
func (s *PostgresTaskStore) List(
	ctx context.Context,
	criteria filter.Criteria,
	page store.Page,
) ([]*domain.Task, int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if page.Limit <= 0 {
		page.Limit = 20
	}
	if page.Offset < 0 {
		page.Offset = 0
	}

	where, args := filter.WhereClause(filter.Combine(criteria), 1)
	clause := ""
	if where != "" {
		clause = " WHERE " + where
	}

	countQuery := `SELECT COUNT(*) FROM tasks` + clause

	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count tasks", slog.String("error", redact.Error(err)))
		return nil, 0, err
	}

	listQuery := fmt.Sprintf(`
		SELECT id, owner_id, title, description, status, priority, is_active, due_date, created_at, updated_at
		FROM tasks%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, clause, len(args)+1, len(args)+2)

	rows, err := s.db.QueryContext(ctx, listQuery, append(args, page.Limit, page.Offset)...)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", redact.Error(err)))
		return nil, 0, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", redact.Error(err)))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", redact.Error(err)))
			return nil, 0, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", redact.Error(err)))
		return nil, 0, err
	}

	log.Debug("listed tasks",
		slog.Int("count", len(tasks)),
		slog.Int64("total", total))
	return tasks, total, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var status, priority string
	var dueDate sql.NullTime

	err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&status,
		&priority,
		&task.IsActive,
		&dueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatus(status)
	task.Priority = domain.TaskPriority(priority)
	if dueDate.Valid {
		due := dueDate.Time
		task.DueDate = &due
	}

	return &task, nil
}
