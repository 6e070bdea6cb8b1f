package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"todoapi/internal/auth"
	"todoapi/internal/errors"
	"todoapi/internal/service"
)

// TodoHandler handles todo endpoints.
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// CreateTodoRequest represents a todo creation request.
type CreateTodoRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Priority    string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     time.Time `json:"due_date" validate:"required"`
}

// UpdateTodoRequest represents a partial todo update. Absent fields are left
// unchanged.
type UpdateTodoRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	Completed   *bool      `json:"completed"`
}

// List godoc
// @Summary List the caller's todos
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Todo
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	user := auth.CurrentUser(c)

	todos, err := h.todoService.List(c.Request().Context(), user.ID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, todos)
}

// Get godoc
// @Summary Get one of the caller's todos by id
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	user := auth.CurrentUser(c)
	todoID, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid id", Code: "VALIDATION_ERROR"})
	}

	todo, err := h.todoService.GetByID(c.Request().Context(), user.ID, todoID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	// Absent or foreign records serialize as null, not as an error.
	return c.JSON(http.StatusOK, todo)
}

// Create godoc
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTodoRequest true "Todo fields"
// @Success 201 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	user := auth.CurrentUser(c)

	var req CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "VALIDATION_ERROR"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error(), Code: "VALIDATION_ERROR"})
	}

	todo, err := h.todoService.Create(c.Request().Context(), user.ID, service.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, todo)
}

// Update godoc
// @Summary Patch a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Param request body UpdateTodoRequest true "Fields to change"
// @Success 200 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos/{id} [patch]
func (h *TodoHandler) Update(c echo.Context) error {
	user := auth.CurrentUser(c)
	todoID, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid id", Code: "VALIDATION_ERROR"})
	}

	var req UpdateTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "VALIDATION_ERROR"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error(), Code: "VALIDATION_ERROR"})
	}

	todo, err := h.todoService.Update(c.Request().Context(), user.ID, todoID, service.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, todo)
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	user := auth.CurrentUser(c)
	todoID, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid id", Code: "VALIDATION_ERROR"})
	}

	if err := h.todoService.Delete(c.Request().Context(), user.ID, todoID); err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
