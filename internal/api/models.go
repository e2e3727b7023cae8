package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// CreateTaskRequest is the payload for creating a new task.
type CreateTaskRequest struct {
	OwnerID     uuid.UUID  `json:"owner_id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=500"`
	Description string     `json:"description" validate:"max=5000"`
	Priority    string     `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest is the payload for replacing a task's mutable fields.
type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=500"`
	Description string     `json:"description" validate:"max=5000"`
	Status      string     `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Priority    string     `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH"`
	IsActive    bool       `json:"is_active"`
	DueDate     *time.Time `json:"due_date"`
}

// TaskResponse is the representation of a task returned to clients.
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	IsActive    bool       `json:"is_active"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskListResponse is a page of tasks plus the total match count.
type TaskListResponse struct {
	Tasks  []TaskResponse `json:"tasks"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// CreateUserRequest is the payload for registering a new user.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// UserResponse is the representation of a user returned to clients.
// It never carries password material.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTaskResponse converts a domain task to its API representation.
func NewTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		OwnerID:     t.OwnerID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		IsActive:    t.IsActive,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewUserResponse converts a domain user to its API representation.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
