package filter

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// op identifies a node kind in the predicate expression tree.
type op int

const (
	opAnd op = iota
	opOr
	opEq
	opGte
	opLte
	opContainsFold
)

// Field names a Task attribute a comparison node applies to.
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldStatus
	FieldPriority
	FieldOwnerID
	FieldIsActive
	FieldDueDate
	FieldCreatedAt
)

// DateField selects which timestamp a date-range predicate constrains.
type DateField int

const (
	DateFieldDue DateField = iota
	DateFieldCreated
)

// Predicate is a boolean condition over a task, represented as an
// immutable expression tree. The zero value is the tautology: it matches
// every task and is the identity element under And.
type Predicate struct {
	op       op
	field    Field
	value    any
	children []Predicate
}

// All returns the always-true predicate.
func All() Predicate {
	return Predicate{op: opAnd}
}

// And conjoins the given predicates. Tautological operands are dropped,
// so And(All(), p) is equivalent to p.
func And(preds ...Predicate) Predicate {
	kept := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p.isAll() {
			continue
		}
		kept = append(kept, p)
	}
	return Predicate{op: opAnd, children: kept}
}

// isAll reports whether p is a tautology.
func (p Predicate) isAll() bool {
	return p.op == opAnd && len(p.children) == 0
}

// ByTextSearch matches tasks whose title or description contains query,
// compared case-insensitively (ASCII-style folding; locale-sensitive
// folding is not supported). A blank query yields the tautology.
func ByTextSearch(query string) Predicate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return All()
	}
	return Predicate{op: opOr, children: []Predicate{
		{op: opContainsFold, field: FieldTitle, value: q},
		{op: opContainsFold, field: FieldDescription, value: q},
	}}
}

// ByStatus matches tasks with the given status; nil yields the tautology.
func ByStatus(status *domain.TaskStatus) Predicate {
	if status == nil {
		return All()
	}
	return Predicate{op: opEq, field: FieldStatus, value: *status}
}

// ByPriority matches tasks with the given priority; nil yields the tautology.
func ByPriority(priority *domain.TaskPriority) Predicate {
	if priority == nil {
		return All()
	}
	return Predicate{op: opEq, field: FieldPriority, value: *priority}
}

// ByOwner matches tasks owned by the given user; nil yields the tautology.
func ByOwner(ownerID *uuid.UUID) Predicate {
	if ownerID == nil {
		return All()
	}
	return Predicate{op: opEq, field: FieldOwnerID, value: *ownerID}
}

// ByActive matches tasks with the given active flag; nil yields the
// tautology. An explicit false is a real constraint, not "unset".
func ByActive(flag *bool) Predicate {
	if flag == nil {
		return All()
	}
	return Predicate{op: opEq, field: FieldIsActive, value: *flag}
}

// ByDateRange matches tasks whose selected timestamp lies within the
// inclusive [from, to] range. Either bound may be nil independently; if
// both are nil the result is the tautology. A task with no due date never
// satisfies a due-date bound.
func ByDateRange(field DateField, from, to *time.Time) Predicate {
	f := FieldDueDate
	if field == DateFieldCreated {
		f = FieldCreatedAt
	}

	var bounds []Predicate
	if from != nil {
		bounds = append(bounds, Predicate{op: opGte, field: f, value: *from})
	}
	if to != nil {
		bounds = append(bounds, Predicate{op: opLte, field: f, value: *to})
	}
	return And(bounds...)
}

// Combine conjoins every dimension of the criteria into one predicate.
// Unset dimensions contribute tautologies, so an empty Criteria combines
// to a predicate that matches all tasks.
func Combine(c Criteria) Predicate {
	n := c.Normalize()

	var search string
	if n.SearchQuery != nil {
		search = *n.SearchQuery
	}

	return And(
		ByTextSearch(search),
		ByStatus(n.Status),
		ByPriority(n.Priority),
		ByOwner(n.OwnerID),
		ByActive(n.IsActive),
		ByDateRange(DateFieldDue, n.DueDateFrom, n.DueDateTo),
		ByDateRange(DateFieldCreated, n.CreatedAtFrom, n.CreatedAtTo),
	)
}

// Match evaluates the predicate against a single task. The predicate is
// stateless and may be re-evaluated against any number of tasks.
func (p Predicate) Match(t *domain.Task) bool {
	switch p.op {
	case opAnd:
		for _, child := range p.children {
			if !child.Match(t) {
				return false
			}
		}
		return true

	case opOr:
		for _, child := range p.children {
			if child.Match(t) {
				return true
			}
		}
		return false

	case opEq:
		return p.fieldEquals(t)

	case opGte:
		tv, ok := p.timeField(t)
		return ok && !tv.Before(p.value.(time.Time))

	case opLte:
		tv, ok := p.timeField(t)
		return ok && !tv.After(p.value.(time.Time))

	case opContainsFold:
		return strings.Contains(strings.ToLower(p.stringField(t)), p.value.(string))
	}
	return false
}

func (p Predicate) fieldEquals(t *domain.Task) bool {
	switch p.field {
	case FieldStatus:
		return t.Status == p.value.(domain.TaskStatus)
	case FieldPriority:
		return t.Priority == p.value.(domain.TaskPriority)
	case FieldOwnerID:
		return t.OwnerID == p.value.(uuid.UUID)
	case FieldIsActive:
		return t.IsActive == p.value.(bool)
	}
	return false
}

// timeField extracts the timestamp named by p.field. The second return is
// false when the task has no value for the field, in which case no range
// bound can be satisfied.
func (p Predicate) timeField(t *domain.Task) (time.Time, bool) {
	switch p.field {
	case FieldDueDate:
		if t.DueDate == nil {
			return time.Time{}, false
		}
		return *t.DueDate, true
	case FieldCreatedAt:
		return t.CreatedAt, true
	}
	return time.Time{}, false
}

func (p Predicate) stringField(t *domain.Task) string {
	switch p.field {
	case FieldTitle:
		return t.Title
	case FieldDescription:
		return t.Description
	}
	return ""
}
