package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/filter"
	"github.com/taskdeck/taskdeck/internal/store"
)

func strPtr(s string) *string { return &s }

func TestTaskStoreCRUD(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "crud@example.com")
	tasks := NewPostgresTaskStore(db, nil)

	due := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	task, err := domain.NewTask(owner.ID, "Buy milk", "two liters", domain.TaskPriorityMedium, &due)
	require.NoError(t, err)
	require.NoError(t, tasks.Create(ctx, task))

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, domain.TaskStatusPending, got.Status)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))

	require.NoError(t, got.Update("Buy milk", "two liters", domain.TaskStatusCompleted, domain.TaskPriorityHigh, true, &due))
	require.NoError(t, tasks.Update(ctx, got))

	updated, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, updated.Status)
	assert.Equal(t, domain.TaskPriorityHigh, updated.Priority)

	require.NoError(t, tasks.Delete(ctx, task.ID))
	_, err = tasks.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.ErrorIs(t, tasks.Delete(ctx, task.ID), store.ErrTaskNotFound)
}

func TestTaskStoreCreateUnknownOwner(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	tasks := NewPostgresTaskStore(db, nil)
	task, err := domain.NewTask(uuid.New(), "Orphan", "", domain.TaskPriorityLow, nil)
	require.NoError(t, err)

	err = tasks.Create(ctx, task)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestTaskStoreListFiltering(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	tasks := NewPostgresTaskStore(db, nil)

	jan15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	feb1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	seed := []struct {
		owner    uuid.UUID
		title    string
		desc     string
		status   domain.TaskStatus
		priority domain.TaskPriority
		active   bool
		due      *time.Time
	}{
		{alice.ID, "Buy milk", "two liters", domain.TaskStatusPending, domain.TaskPriorityMedium, true, &jan15},
		{alice.ID, "Groceries", "remember to buy bread", domain.TaskStatusCompleted, domain.TaskPriorityHigh, true, &feb1},
		{bob.ID, "Clean house", "weekend chore", domain.TaskStatusCompleted, domain.TaskPriorityLow, false, nil},
	}

	for _, s := range seed {
		task, err := domain.NewTask(s.owner, s.title, s.desc, s.priority, s.due)
		require.NoError(t, err)
		task.Status = s.status
		task.IsActive = s.active
		require.NoError(t, tasks.Create(ctx, task))
	}

	page := store.Page{Limit: 10}

	t.Run("no criteria matches all", func(t *testing.T) {
		got, total, err := tasks.List(ctx, filter.Criteria{}, page)
		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.EqualValues(t, 3, total)
	})

	t.Run("text search over title and description", func(t *testing.T) {
		got, total, err := tasks.List(ctx, filter.Criteria{SearchQuery: strPtr("Buy")}, page)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.EqualValues(t, 2, total)
		for _, task := range got {
			assert.NotEqual(t, "Clean house", task.Title)
		}
	})

	t.Run("text search treats underscore and percent literally", func(t *testing.T) {
		got, total, err := tasks.List(ctx, filter.Criteria{SearchQuery: strPtr("y_m")}, page)
		require.NoError(t, err)
		assert.Empty(t, got, `"y_m" is not a literal substring of any title, _ must not wildcard`)
		assert.EqualValues(t, 0, total)

		got, _, err = tasks.List(ctx, filter.Criteria{SearchQuery: strPtr("milk%")}, page)
		require.NoError(t, err)
		assert.Empty(t, got, `"milk%" is not a literal substring of any title, % must not wildcard`)
	})

	t.Run("status and priority conjoined", func(t *testing.T) {
		status := domain.TaskStatusCompleted
		priority := domain.TaskPriorityHigh
		got, total, err := tasks.List(ctx, filter.Criteria{Status: &status, Priority: &priority}, page)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, "Groceries", got[0].Title)
	})

	t.Run("owner filter", func(t *testing.T) {
		got, total, err := tasks.List(ctx, filter.Criteria{OwnerID: &bob.ID}, page)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, bob.ID, got[0].OwnerID)
	})

	t.Run("explicit inactive filter", func(t *testing.T) {
		active := false
		got, _, err := tasks.List(ctx, filter.Criteria{IsActive: &active}, page)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Clean house", got[0].Title)
	})

	t.Run("due date range excludes null due dates", func(t *testing.T) {
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		got, _, err := tasks.List(ctx, filter.Criteria{DueDateFrom: &from, DueDateTo: &to}, page)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Buy milk", got[0].Title)
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		got, _, err := tasks.List(ctx, filter.Criteria{DueDateFrom: &jan15, DueDateTo: &jan15}, page)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Buy milk", got[0].Title)
	})

	t.Run("pagination reports full total", func(t *testing.T) {
		got, total, err := tasks.List(ctx, filter.Criteria{}, store.Page{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.EqualValues(t, 3, total)
	})
}

func TestUserStoreDeleteCascadesTasks(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "cascade@example.com")
	tasks := NewPostgresTaskStore(db, nil)

	task, err := domain.NewTask(owner.ID, "Doomed", "", domain.TaskPriorityLow, nil)
	require.NoError(t, err)
	require.NoError(t, tasks.Create(ctx, task))

	users := NewPostgresUserStore(db, 0, nil)
	require.NoError(t, users.Delete(ctx, owner.ID))

	_, err = tasks.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}
