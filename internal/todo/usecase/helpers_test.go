package usecase_test

import (
	"context"

	"todo-api/internal/todo"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubRepo lets each test override single repository calls.
type stubRepo struct {
	getAllFunc  func() ([]todo.Todo, error)
	getByIDFunc func(id string) (todo.Todo, bool, error)
	createFunc  func(t todo.Todo) (todo.Todo, error)
	updateFunc  func(t todo.Todo) (todo.Todo, bool, error)
	deleteFunc  func(id string) (bool, error)

	updateCalls int
}

func (s *stubRepo) GetAll(ctx context.Context) ([]todo.Todo, error) {
	if s.getAllFunc != nil {
		return s.getAllFunc()
	}
	return []todo.Todo{}, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (todo.Todo, bool, error) {
	if s.getByIDFunc != nil {
		return s.getByIDFunc(id)
	}
	return todo.Todo{}, false, nil
}

func (s *stubRepo) Create(ctx context.Context, t todo.Todo) (todo.Todo, error) {
	if s.createFunc != nil {
		return s.createFunc(t)
	}
	return t, nil
}

func (s *stubRepo) Update(ctx context.Context, t todo.Todo) (todo.Todo, bool, error) {
	s.updateCalls++
	if s.updateFunc != nil {
		return s.updateFunc(t)
	}
	return t, true, nil
}

func (s *stubRepo) Delete(ctx context.Context, id string) (bool, error) {
	if s.deleteFunc != nil {
		return s.deleteFunc(id)
	}
	return false, nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
