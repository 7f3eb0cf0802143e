package orm

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"todo-api/internal/todo/repository"
	"todo-api/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// Repository is the GORM-backed todo store. Migrate is exposed on top of the
// storage contract so startup can create the table.
type Repository interface {
	repository.Repository
	Migrate(ctx context.Context) error
}

// New creates a new GORM-backed Repository for the todo domain.
func New(db *gorm.DB, l log.Logger) Repository {
	if db == nil {
		panic("todo/repository/orm: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Migrate creates or alters the todos table to match todoModel.
func (r *implRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&todoModel{}); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
		return fmt.Errorf("auto migrate %s: %w", tableName, err)
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/orm.%s", method)
}
