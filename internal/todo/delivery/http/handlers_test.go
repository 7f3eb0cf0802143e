package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"todo-api/internal/middleware"
	"todo-api/internal/todo"
	todoHTTP "todo-api/internal/todo/delivery/http"
	"todo-api/internal/todo/repository/memory"
	"todo-api/internal/todo/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// failingUseCase fails every call, standing in for an unavailable database.
type failingUseCase struct{ err error }

func (f failingUseCase) GetAllTodos(ctx context.Context) ([]todo.TodoDTO, error) {
	return nil, f.err
}
func (f failingUseCase) GetTodoByID(ctx context.Context, id string) (todo.TodoDTO, bool, error) {
	return todo.TodoDTO{}, false, f.err
}
func (f failingUseCase) CreateTodo(ctx context.Context, input todo.CreateTodoInput) (todo.TodoDTO, error) {
	return todo.TodoDTO{}, f.err
}
func (f failingUseCase) UpdateTodo(ctx context.Context, id string, input todo.UpdateTodoInput) (todo.TodoDTO, bool, error) {
	return todo.TodoDTO{}, false, f.err
}
func (f failingUseCase) DeleteTodo(ctx context.Context, id string) (bool, error) {
	return false, f.err
}

func newRouter(uc todo.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := &mockLogger{}
	mw := middleware.New(l, middleware.Config{})

	r := gin.New()
	r.Use(mw.Recovery())
	todoHTTP.RegisterRoutes(r.Group("/api"), todoHTTP.New(l, uc), mw)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTodoLifecycle(t *testing.T) {
	r := newRouter(usecase.New(memory.New(), &mockLogger{}))

	steps := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
		wantBody string
	}{
		{"List Empty", http.MethodGet, "/api/todos", "", http.StatusOK, `[]`},
		{"Create", http.MethodPost, "/api/todos", `{"id":"1","title":"Buy milk","isCompleted":false}`, http.StatusCreated, `{"id":"1","title":"Buy milk","isCompleted":false}`},
		{"Get", http.MethodGet, "/api/todos/1", "", http.StatusOK, `{"id":"1","title":"Buy milk","isCompleted":false}`},
		{"List One", http.MethodGet, "/api/todos", "", http.StatusOK, `[{"id":"1","title":"Buy milk","isCompleted":false}]`},
		{"Partial Update", http.MethodPut, "/api/todos/1", `{"isCompleted":true}`, http.StatusOK, `{"id":"1","title":"Buy milk","isCompleted":true}`},
		{"Body ID Ignored", http.MethodPut, "/api/todos/1", `{"id":"2","description":"2 liters"}`, http.StatusOK, `{"id":"1","title":"Buy milk","description":"2 liters","isCompleted":true}`},
		{"Explicit Empty Description Clears", http.MethodPut, "/api/todos/1", `{"description":""}`, http.StatusOK, `{"id":"1","title":"Buy milk","isCompleted":true}`},
		{"Update Empty Body", http.MethodPut, "/api/todos/1", "", http.StatusOK, `{"id":"1","title":"Buy milk","isCompleted":true}`},
		{"Delete", http.MethodDelete, "/api/todos/1", "", http.StatusNoContent, ``},
		{"Get After Delete", http.MethodGet, "/api/todos/1", "", http.StatusNotFound, `{"error":"ToDo not found"}`},
		{"Update After Delete", http.MethodPut, "/api/todos/1", `{"title":"x"}`, http.StatusNotFound, `{"error":"ToDo not found"}`},
		{"Update Empty Body After Delete", http.MethodPut, "/api/todos/1", "", http.StatusNotFound, `{"error":"ToDo not found"}`},
		{"Delete After Delete", http.MethodDelete, "/api/todos/1", "", http.StatusNotFound, `{"error":"ToDo not found"}`},
	}

	for _, step := range steps {
		w := do(r, step.method, step.path, step.body)
		if w.Code != step.wantCode {
			t.Fatalf("%s: expected status %d, got %d (body %s)", step.name, step.wantCode, w.Code, w.Body.String())
		}
		if got := w.Body.String(); got != step.wantBody {
			t.Errorf("%s: expected body %s, got %s", step.name, step.wantBody, got)
		}
	}
}

func TestInvalidBody(t *testing.T) {
	r := newRouter(usecase.New(memory.New(), &mockLogger{}))
	do(r, http.MethodPost, "/api/todos", `{"id":"1","title":"a","isCompleted":false}`)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"Create Malformed JSON", http.MethodPost, "/api/todos", `{"id":`},
		{"Create Wrong Type", http.MethodPost, "/api/todos", `{"id":"2","isCompleted":"yes"}`},
		{"Update Malformed JSON", http.MethodPut, "/api/todos/1", `not json`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, tc.method, tc.path, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if w.Body.String() != `{"error":"Invalid request body"}` {
				t.Errorf("unexpected body %s", w.Body.String())
			}
		})
	}
}

func TestEmptyBodyBindsAsEmptyObject(t *testing.T) {
	r := newRouter(usecase.New(memory.New(), &mockLogger{}))

	send := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, http.NoBody)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Create", func(t *testing.T) {
		w := send(http.MethodPost, "/api/todos")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %s)", w.Code, w.Body.String())
		}
		if w.Body.String() != `{"id":"","title":"","isCompleted":false}` {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("Update Missing ID", func(t *testing.T) {
		w := send(http.MethodPut, "/api/todos/42")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceFailure(t *testing.T) {
	r := newRouter(failingUseCase{err: errors.New("connection refused")})

	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"List", http.MethodGet, "/api/todos", ""},
		{"Detail", http.MethodGet, "/api/todos/1", ""},
		{"Create", http.MethodPost, "/api/todos", `{"id":"1","title":"a","isCompleted":false}`},
		{"Update", http.MethodPut, "/api/todos/1", `{"title":"b"}`},
		{"Delete", http.MethodDelete, "/api/todos/1", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, tc.method, tc.path, tc.body)
			if w.Code != http.StatusInternalServerError {
				t.Errorf("expected 500, got %d", w.Code)
			}
			if w.Body.String() != `{"error":"Internal Server Error"}` {
				t.Errorf("cause leaked or wrong body: %s", w.Body.String())
			}
		})
	}
}
