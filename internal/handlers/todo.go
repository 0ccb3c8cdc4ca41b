package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todoback/internal/apperr"
	"todoback/internal/dto"
	"todoback/internal/resp"
	"todoback/internal/service"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  resp.SuccessEnvelope{data=dto.TodoResponse}
// @Failure      400   {object}  resp.ErrorEnvelope
// @Router       /api/todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	t, err := h.svc.Create(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTitle) {
			fail(c, apperr.Validation(err.Error()))
			return
		}
		fail(c, apperr.Internal(err))
		return
	}

	resp.Created(c, dto.FromTodo(t), "Todo created successfully")
}

// List godoc
// @Summary      List all todos, newest first
// @Tags         todos
// @Produce      json
// @Success      200  {object}  resp.SuccessEnvelope{data=[]dto.TodoResponse}
// @Failure      500  {object}  resp.ErrorEnvelope
// @Router       /api/todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, apperr.Internal(err))
		return
	}
	resp.OK(c, dto.FromTodos(list), "Todos retrieved successfully")
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  resp.SuccessEnvelope{data=dto.TodoResponse}
// @Failure      400  {object}  resp.ErrorEnvelope
// @Failure      404  {object}  resp.ErrorEnvelope
// @Router       /api/todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fail(c, apperr.NotFound("Todo not found"))
			return
		}
		fail(c, apperr.Internal(err))
		return
	}
	resp.OK(c, dto.FromTodo(t), "Todo retrieved successfully")
}

// Update godoc
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "Todo ID"
// @Param        body  body      dto.UpdateTodoRequest  true  "Partial update, at least one field"
// @Success      200   {object}  resp.SuccessEnvelope{data=dto.TodoResponse}
// @Failure      400   {object}  resp.ErrorEnvelope
// @Failure      404   {object}  resp.ErrorEnvelope
// @Router       /api/todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}
	if req.Empty() {
		fail(c, apperr.Validation("at least one field must be provided"))
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, req.Title, req.Description, req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			fail(c, apperr.NotFound("Todo not found"))
		case errors.Is(err, service.ErrEmptyTitle):
			fail(c, apperr.Validation(err.Error()))
		default:
			fail(c, apperr.Internal(err))
		}
		return
	}
	resp.OK(c, dto.FromTodo(t), "Todo updated successfully")
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  resp.SuccessEnvelope
// @Failure      400  {object}  resp.ErrorEnvelope
// @Failure      404  {object}  resp.ErrorEnvelope
// @Router       /api/todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fail(c, apperr.NotFound("Todo not found"))
			return
		}
		fail(c, apperr.Internal(err))
		return
	}
	resp.OK(c, nil, "Todo deleted successfully")
}

// Toggle godoc
// @Summary      Toggle completion status
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  resp.SuccessEnvelope{data=dto.TodoResponse}
// @Failure      400  {object}  resp.ErrorEnvelope
// @Failure      404  {object}  resp.ErrorEnvelope
// @Router       /api/todos/{id}/toggle [patch]
func (h *TodoHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.Toggle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fail(c, apperr.NotFound("Todo not found"))
			return
		}
		fail(c, apperr.Internal(err))
		return
	}
	resp.OK(c, dto.FromTodo(t), "Todo completion status toggled successfully")
}

// fail records the error for the centralized translator and stops the chain.
func fail(c *gin.Context, e *apperr.Error) {
	_ = c.Error(e)
	c.Abort()
}

// parseID trims the id path parameter. Ids are opaque strings: a blank id is
// a 400, anything else goes to the store, where an unknown id reads as 404.
func parseID(c *gin.Context, name string) (string, bool) {
	id := strings.TrimSpace(c.Param(name))
	if id == "" {
		fail(c, apperr.Validation("id must not be empty"))
		return "", false
	}
	return id, true
}

// bindError maps a JSON binding failure to the taxonomy: an oversized body
// is a 413, everything else a 400.
func bindError(err error) *apperr.Error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperr.PayloadTooLarge("Request body too large")
	}
	return apperr.Validation(err.Error())
}
