package filter

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// Criteria is an immutable set of optional filter dimensions for listing
// tasks. Nil pointers mean the dimension is not applied; a field absent
// from the criteria never constrains the result set.
type Criteria struct {
	// SearchQuery matches case-insensitively against title or description.
	SearchQuery *string

	Status   *domain.TaskStatus
	Priority *domain.TaskPriority
	OwnerID  *uuid.UUID
	IsActive *bool

	// Inclusive bounds on the task's due date. Either bound may be set
	// independently. A task without a due date never matches a bound.
	DueDateFrom *time.Time
	DueDateTo   *time.Time

	// Inclusive bounds on the task's creation time.
	CreatedAtFrom *time.Time
	CreatedAtTo   *time.Time
}

// Normalize returns a copy of c with text dimensions canonicalized:
// SearchQuery is trimmed, and an empty or whitespace-only query is treated
// as absent. The receiver is not modified.
func (c Criteria) Normalize() Criteria {
	if c.SearchQuery != nil {
		q := strings.TrimSpace(*c.SearchQuery)
		if q == "" {
			c.SearchQuery = nil
		} else {
			c.SearchQuery = &q
		}
	}
	return c
}

// IsZero reports whether no dimension is set after normalization.
func (c Criteria) IsZero() bool {
	n := c.Normalize()
	return n.SearchQuery == nil &&
		n.Status == nil &&
		n.Priority == nil &&
		n.OwnerID == nil &&
		n.IsActive == nil &&
		n.DueDateFrom == nil &&
		n.DueDateTo == nil &&
		n.CreatedAtFrom == nil &&
		n.CreatedAtTo == nil
}
