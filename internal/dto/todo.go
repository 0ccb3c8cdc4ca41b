package dto

import (
	"time"

	"todoback/internal/domain"
)

// CreateTodoRequest is the JSON body for POST /api/todos.
type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
}

// UpdateTodoRequest is the JSON body for PUT /api/todos/:id.
// All fields are optional, but at least one must be present.
type UpdateTodoRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Completed   *bool   `json:"completed"`
}

// Empty reports whether the patch carries no fields at all.
// An empty patch is rejected before any persistence call.
func (r UpdateTodoRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Completed == nil
}

// TodoResponse is the wire shape of a todo. Description marshals as null
// when unset, matching the nullable column.
type TodoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromTodo(t domain.Todo) TodoResponse {
	out := TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Description != "" {
		out.Description = &t.Description
	}
	return out
}

func FromTodos(list []domain.Todo) []TodoResponse {
	out := make([]TodoResponse, len(list))
	for i := range list {
		out[i] = FromTodo(list[i])
	}
	return out
}
