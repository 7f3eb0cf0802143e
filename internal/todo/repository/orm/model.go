package orm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"todo-api/internal/todo"
)

const tableName = "todos"

// uuidColumn stores todo ids in the closest UUID-shaped type each dialect offers.
type uuidColumn string

// GormDBDataType implements schema.GormDBDataTypeInterface.
func (uuidColumn) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "uuid"
	case "mysql":
		return "char(36)"
	case "sqlserver":
		return "nvarchar(36)"
	default:
		return "text"
	}
}

// todoModel is the mapped row of the todos table.
type todoModel struct {
	ID          uuidColumn `gorm:"column:id;primaryKey"`
	Title       string     `gorm:"column:title;not null"`
	Description *string    `gorm:"column:description"`
	IsCompleted bool       `gorm:"column:isCompleted;not null"`
}

func (todoModel) TableName() string { return tableName }

// BeforeCreate fills in a UUIDv4 when the caller did not supply an id.
func (m *todoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuidColumn(uuid.NewString())
	}
	return nil
}

func newTodoModel(t todo.Todo) todoModel {
	desc := t.Description
	return todoModel{
		ID:          uuidColumn(t.ID),
		Title:       t.Title,
		Description: &desc,
		IsCompleted: t.IsCompleted,
	}
}

func (m todoModel) toEntity() todo.Todo {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}
	return todo.Todo{
		ID:          string(m.ID),
		Title:       m.Title,
		Description: desc,
		IsCompleted: m.IsCompleted,
	}
}
