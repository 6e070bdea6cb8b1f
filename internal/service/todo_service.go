package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"todoapi/internal/cache"
	apperrors "todoapi/internal/errors"
	"todoapi/internal/model"
	"todoapi/internal/repository"
)

const todoListCacheTTL = 5 * time.Minute

// TodoInput carries the fields accepted when creating a todo.
type TodoInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     time.Time
}

// TodoPatch carries the fields of a partial update. Nil fields are left
// unchanged on the record.
type TodoPatch struct {
	Title       *string
	Description *string
	Priority    *string
	DueDate     *time.Time
	Completed   *bool
}

// TodoService performs ownership-checked CRUD over todo records. Every
// operation is scoped to the authenticated caller; a caller can never reach
// another user's record through a guessed id.
type TodoService interface {
	List(ctx context.Context, userID uint) ([]model.Todo, error)
	GetByID(ctx context.Context, userID, todoID uint) (*model.Todo, error)
	Create(ctx context.Context, userID uint, input TodoInput) (*model.Todo, error)
	Update(ctx context.Context, userID, todoID uint, patch TodoPatch) (*model.Todo, error)
	Delete(ctx context.Context, userID, todoID uint) error
}

type todoService struct {
	todos repository.TodoRepository
	cache *cache.Client
}

// NewTodoService creates a new todo service.
func NewTodoService(todos repository.TodoRepository, cache *cache.Client) TodoService {
	return &todoService{
		todos: todos,
		cache: cache,
	}
}

func (s *todoService) cacheKey(userID uint) string {
	return fmt.Sprintf("todos:user:%d", userID)
}

// List returns all todos owned by the caller, cached per user.
func (s *todoService) List(ctx context.Context, userID uint) ([]model.Todo, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached []model.Todo
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	todos, err := s.todos.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	if payload, err := json.Marshal(todos); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, todoListCacheTTL)
	}

	return todos, nil
}

// GetByID returns the todo only if it exists and is owned by the caller.
// A missing record and another user's record are both reported as absence,
// so the response never confirms that a foreign record exists.
func (s *todoService) GetByID(ctx context.Context, userID, todoID uint) (*model.Todo, error) {
	todo, err := s.todos.FindByIDAndOwner(ctx, todoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return todo, nil
}

// Create stores a new todo owned by the caller, always starting incomplete.
func (s *todoService) Create(ctx context.Context, userID uint, input TodoInput) (*model.Todo, error) {
	todo := &model.Todo{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Completed:   false,
	}

	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return todo, nil
}

// Update refetches the record by id alone and compares the stored owner to
// the caller before touching anything. Missing record and foreign owner
// both fail as access denied on the write path.
func (s *todoService) Update(ctx context.Context, userID, todoID uint, patch TodoPatch) (*model.Todo, error) {
	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccessDenied
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	if todo.UserID != userID {
		return nil, apperrors.ErrAccessDenied
	}

	if patch.Title != nil {
		todo.Title = *patch.Title
	}
	if patch.Description != nil {
		todo.Description = *patch.Description
	}
	if patch.Priority != nil {
		todo.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		todo.DueDate = *patch.DueDate
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}

	if err := s.todos.Save(ctx, todo); err != nil {
		return nil, fmt.Errorf("save todo: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return todo, nil
}

// Delete applies the same ownership check as Update, then deletes with a
// conditional statement so a record that vanished mid-check is not lost
// silently.
func (s *todoService) Delete(ctx context.Context, userID, todoID uint) error {
	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccessDenied
		}
		return fmt.Errorf("find todo: %w", err)
	}
	if todo.UserID != userID {
		return apperrors.ErrAccessDenied
	}

	rows, err := s.todos.DeleteByIDAndOwner(ctx, todoID, userID)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrAccessDenied
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return nil
}
