package filter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestCriteriaNormalize(t *testing.T) {
	t.Parallel()

	t.Run("trims search query", func(t *testing.T) {
		t.Parallel()
		c := Criteria{SearchQuery: ptr("  milk  ")}.Normalize()
		assert.Equal(t, "milk", *c.SearchQuery)
	})

	t.Run("empty search query becomes absent", func(t *testing.T) {
		t.Parallel()
		c := Criteria{SearchQuery: ptr("")}.Normalize()
		assert.Nil(t, c.SearchQuery)
	})

	t.Run("whitespace-only search query becomes absent", func(t *testing.T) {
		t.Parallel()
		c := Criteria{SearchQuery: ptr(" \t ")}.Normalize()
		assert.Nil(t, c.SearchQuery)
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		t.Parallel()
		orig := Criteria{SearchQuery: ptr("  milk  ")}
		_ = orig.Normalize()
		assert.Equal(t, "  milk  ", *orig.SearchQuery)
	})
}

func TestCriteriaIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, Criteria{}.IsZero())
	assert.True(t, Criteria{SearchQuery: ptr("  ")}.IsZero())

	status := domain.TaskStatusPending
	owner := uuid.New()
	now := time.Now().UTC()

	assert.False(t, Criteria{Status: &status}.IsZero())
	assert.False(t, Criteria{OwnerID: &owner}.IsZero())
	assert.False(t, Criteria{IsActive: ptr(false)}.IsZero())
	assert.False(t, Criteria{DueDateTo: &now}.IsZero())
	assert.False(t, Criteria{CreatedAtFrom: &now}.IsZero())
}
