package orm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo-api/internal/todo"
	repo "todo-api/internal/todo/repository"
)

// GetAll returns every row in default table order.
func (r *implRepository) GetAll(ctx context.Context) ([]todo.Todo, error) {
	var models []todoModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetAll"), err)
		return nil, repo.ErrFailedToList
	}

	todos := make([]todo.Todo, len(models))
	for i, m := range models {
		todos[i] = m.toEntity()
	}
	return todos, nil
}

// GetByID looks the todo up by primary key. Not found → (zero, false, nil).
func (r *implRepository) GetByID(ctx context.Context, id string) (todo.Todo, bool, error) {
	var m todoModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return todo.Todo{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByID"), err)
		return todo.Todo{}, false, repo.ErrFailedToGet
	}
	return m.toEntity(), true, nil
}

// Create inserts t and returns the persisted row, including a generated id.
func (r *implRepository) Create(ctx context.Context, t todo.Todo) (todo.Todo, error) {
	m := newTodoModel(t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return todo.Todo{}, repo.ErrFailedToInsert
	}
	return m.toEntity(), nil
}

// Update overwrites every mutable column of the row identified by t.ID.
func (r *implRepository) Update(ctx context.Context, t todo.Todo) (todo.Todo, bool, error) {
	var (
		updated todoModel
		found   bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing todoModel
		err := tx.Where("id = ?", t.ID).Take(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		m := newTodoModel(t)
		// Select forces zero values (false, "") to be written too.
		if err := tx.Model(&existing).Select("title", "description", "isCompleted").Updates(&m).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", t.ID).Take(&updated).Error; err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return todo.Todo{}, false, repo.ErrFailedToUpdate
	}
	if !found {
		return todo.Todo{}, false, nil
	}
	return updated.toEntity(), true, nil
}

// Delete removes the row with the given id.
func (r *implRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&todoModel{})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), res.Error)
		return false, repo.ErrFailedToDelete
	}
	return res.RowsAffected > 0, nil
}
