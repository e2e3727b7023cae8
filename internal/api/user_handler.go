package api

import (
	"log/slog"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/api/shared"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/platform/logger"
	"github.com/taskdeck/taskdeck/internal/store"
)

// UserHandler handles user-related HTTP requests. It talks to the user
// store directly; user operations have no business logic beyond what the
// store already enforces.
type UserHandler struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given user store.
func NewUserHandler(users store.UserStore, log *slog.Logger) *UserHandler {
	if users == nil {
		panic("user store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		users:  users,
		logger: log.With(slog.String("component", "user_handler")),
	}
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "malformed request body", err)
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	user, err := domain.NewUser(req.Email, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, NewUserResponse(user))
}

// GetUser handles GET /api/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

// DeleteUser handles DELETE /api/users/{id}. The user's tasks are removed
// with them.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("user deleted", slog.String("user_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
