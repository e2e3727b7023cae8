package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/api/shared"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/platform/logger"
	"github.com/taskdeck/taskdeck/internal/service"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	service *service.TaskService
	logger  *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given task service.
func NewTaskHandler(svc *service.TaskService, log *slog.Logger) *TaskHandler {
	if svc == nil {
		panic("task service cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &TaskHandler{
		service: svc,
		logger:  log.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "malformed request body", err)
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	task, err := h.service.CreateTask(
		r.Context(), req.OwnerID, req.Title, req.Description,
		domain.TaskPriority(req.Priority), req.DueDate)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("owner_id", task.OwnerID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(task))
}

// GetTask handles GET /api/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	task, err := h.service.GetTask(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// ListTasks handles GET /api/tasks. All filter dimensions are optional
// query parameters; an unfiltered request returns the first page of every
// task.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	criteria, page, err := ParseListQuery(r.URL.Query())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}

	tasks, total, page, err := h.service.ListTasks(r.Context(), criteria, page)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	resp := TaskListResponse{
		Tasks:  make([]TaskResponse, 0, len(tasks)),
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, task := range tasks {
		resp.Tasks = append(resp.Tasks, NewTaskResponse(task))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// UpdateTask handles PUT /api/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "malformed request body", err)
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	task, err := h.service.UpdateTask(
		r.Context(), id, req.Title, req.Description,
		domain.TaskStatus(req.Status), domain.TaskPriority(req.Priority),
		req.IsActive, req.DueDate)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("task updated", slog.String("task_id", task.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteTask(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("task deleted", slog.String("task_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// parseIDParam extracts and parses the {id} URL parameter. On failure it
// writes a 400 response and returns ok=false.
func parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}
