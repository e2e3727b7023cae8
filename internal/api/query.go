package api

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/filter"
	"github.com/taskdeck/taskdeck/internal/store"
)

// filterParamError marks a malformed list query parameter. The API maps it
// to a 400 with the offending parameter name in the message.
type filterParamError struct {
	param string
}

func (e *filterParamError) Error() string {
	return fmt.Sprintf("invalid filter parameter: %s", e.param)
}

// ParseListQuery builds filter criteria and a page window from list query
// parameters. Absent parameters leave their dimension unset. Recognized
// parameters: q, status, priority, owner_id, is_active, due_from, due_to,
// created_from, created_to, limit, offset. Timestamps are RFC 3339.
func ParseListQuery(values url.Values) (filter.Criteria, store.Page, error) {
	var criteria filter.Criteria
	var page store.Page

	if q := values.Get("q"); q != "" {
		criteria.SearchQuery = &q
	}

	if raw := values.Get("status"); raw != "" {
		status := domain.TaskStatus(raw)
		if !status.IsValid() {
			return criteria, page, &filterParamError{param: "status"}
		}
		criteria.Status = &status
	}

	if raw := values.Get("priority"); raw != "" {
		priority := domain.TaskPriority(raw)
		if !priority.IsValid() {
			return criteria, page, &filterParamError{param: "priority"}
		}
		criteria.Priority = &priority
	}

	if raw := values.Get("owner_id"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			return criteria, page, &filterParamError{param: "owner_id"}
		}
		criteria.OwnerID = &ownerID
	}

	if raw := values.Get("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return criteria, page, &filterParamError{param: "is_active"}
		}
		criteria.IsActive = &active
	}

	var err error
	if criteria.DueDateFrom, err = parseTimeParam(values, "due_from"); err != nil {
		return criteria, page, err
	}
	if criteria.DueDateTo, err = parseTimeParam(values, "due_to"); err != nil {
		return criteria, page, err
	}
	if criteria.CreatedAtFrom, err = parseTimeParam(values, "created_from"); err != nil {
		return criteria, page, err
	}
	if criteria.CreatedAtTo, err = parseTimeParam(values, "created_to"); err != nil {
		return criteria, page, err
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return criteria, page, &filterParamError{param: "limit"}
		}
		page.Limit = limit
	}

	if raw := values.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return criteria, page, &filterParamError{param: "offset"}
		}
		page.Offset = offset
	}

	return criteria, page, nil
}

func parseTimeParam(values url.Values, param string) (*time.Time, error) {
	raw := values.Get(param)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, &filterParamError{param: param}
	}
	return &t, nil
}
