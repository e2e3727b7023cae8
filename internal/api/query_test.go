package api

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestParseListQuery(t *testing.T) {
	t.Parallel()

	t.Run("empty query yields zero criteria and zero page", func(t *testing.T) {
		t.Parallel()

		criteria, page, err := ParseListQuery(url.Values{})

		require.NoError(t, err)
		assert.True(t, criteria.IsZero())
		assert.Zero(t, page.Limit)
		assert.Zero(t, page.Offset)
	})

	t.Run("all parameters set", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		values := url.Values{}
		values.Set("q", "groceries")
		values.Set("status", "IN_PROGRESS")
		values.Set("priority", "HIGH")
		values.Set("owner_id", ownerID.String())
		values.Set("is_active", "true")
		values.Set("due_from", "2026-01-01T00:00:00Z")
		values.Set("due_to", "2026-01-31T23:59:59Z")
		values.Set("created_from", "2025-06-01T00:00:00Z")
		values.Set("created_to", "2025-12-31T00:00:00Z")
		values.Set("limit", "50")
		values.Set("offset", "100")

		criteria, page, err := ParseListQuery(values)

		require.NoError(t, err)
		require.NotNil(t, criteria.SearchQuery)
		assert.Equal(t, "groceries", *criteria.SearchQuery)
		require.NotNil(t, criteria.Status)
		assert.Equal(t, domain.TaskStatusInProgress, *criteria.Status)
		require.NotNil(t, criteria.Priority)
		assert.Equal(t, domain.TaskPriorityHigh, *criteria.Priority)
		require.NotNil(t, criteria.OwnerID)
		assert.Equal(t, ownerID, *criteria.OwnerID)
		require.NotNil(t, criteria.IsActive)
		assert.True(t, *criteria.IsActive)
		require.NotNil(t, criteria.DueDateFrom)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), criteria.DueDateFrom.UTC())
		require.NotNil(t, criteria.CreatedAtTo)
		assert.Equal(t, 50, page.Limit)
		assert.Equal(t, 100, page.Offset)
	})

	t.Run("is_active false is a constraint, not absence", func(t *testing.T) {
		t.Parallel()

		values := url.Values{"is_active": []string{"false"}}

		criteria, _, err := ParseListQuery(values)

		require.NoError(t, err)
		require.NotNil(t, criteria.IsActive)
		assert.False(t, *criteria.IsActive)
	})

	t.Run("malformed values name the offending parameter", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			param string
			value string
		}{
			{"status", "DONE"},
			{"priority", "URGENT"},
			{"owner_id", "not-a-uuid"},
			{"is_active", "maybe"},
			{"due_from", "January 1st"},
			{"due_to", "2026-13-01T00:00:00Z"},
			{"created_from", "1754000000"},
			{"created_to", "yesterday"},
			{"limit", "ten"},
			{"offset", "-5"},
		}

		for _, tc := range cases {
			t.Run(tc.param, func(t *testing.T) {
				t.Parallel()

				values := url.Values{tc.param: []string{tc.value}}

				_, _, err := ParseListQuery(values)

				require.Error(t, err)
				assert.Equal(t, "invalid filter parameter: "+tc.param, err.Error())
			})
		}
	})
}
