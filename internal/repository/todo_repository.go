package repository

import (
	"context"

	"gorm.io/gorm"

	"todoapi/internal/model"
)

// TodoRepository defines todo persistence operations.
type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	Save(ctx context.Context, todo *model.Todo) error
	FindByID(ctx context.Context, id uint) (*model.Todo, error)
	FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.Todo, error)
	ListByOwner(ctx context.Context, userID uint) ([]model.Todo, error)
	DeleteByIDAndOwner(ctx context.Context, id, userID uint) (int64, error)
}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository builds a GORM-backed repository.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *todoRepository) Save(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

func (r *todoRepository) FindByID(ctx context.Context, id uint) (*model.Todo, error) {
	var todo model.Todo
	if err := r.db.WithContext(ctx).First(&todo, id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.Todo, error) {
	var todo model.Todo
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Todo, error) {
	todos := make([]model.Todo, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// DeleteByIDAndOwner deletes in a single conditional statement so a record
// that changed hands or vanished after the ownership check is never removed.
func (r *todoRepository) DeleteByIDAndOwner(ctx context.Context, id, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Todo{})
	return res.RowsAffected, res.Error
}
