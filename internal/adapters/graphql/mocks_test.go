package graphql_test

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/ports"
)

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Signup(ctx context.Context, req ports.SignupRequest) (*ports.AuthResult, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*ports.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuth) Login(ctx context.Context, req ports.LoginRequest) (*ports.AuthResult, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*ports.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuth) GoogleLogin(ctx context.Context, profile ports.GoogleProfile) (*ports.AuthResult, error) {
	args := m.Called(ctx, profile)
	if r := args.Get(0); r != nil {
		return r.(*ports.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuth) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuth) ValidateToken(token string) (*ports.Claims, error) {
	args := m.Called(token)
	if c := args.Get(0); c != nil {
		return c.(*ports.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuth) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: "token", Value: token, Path: "/", HttpOnly: true}
}

func (m *mockAuth) ClearSessionCookie() *http.Cookie {
	return &http.Cookie{Name: "token", Path: "/", HttpOnly: true, MaxAge: -1}
}

func (m *mockAuth) CookieName() string { return "token" }

type mockProjects struct{ mock.Mock }

func (m *mockProjects) Create(ctx context.Context, userID uuid.UUID, req ports.CreateProjectRequest) (*entities.Project, error) {
	args := m.Called(ctx, userID, req)
	if p := args.Get(0); p != nil {
		return p.(*entities.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjects) List(ctx context.Context, userID uuid.UUID) ([]*entities.Project, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *mockProjects) Get(ctx context.Context, userID, id uuid.UUID) (*entities.Project, error) {
	args := m.Called(ctx, userID, id)
	if p := args.Get(0); p != nil {
		return p.(*entities.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjects) Update(ctx context.Context, userID, id uuid.UUID, req ports.UpdateProjectRequest) (*entities.Project, error) {
	args := m.Called(ctx, userID, id, req)
	if p := args.Get(0); p != nil {
		return p.(*entities.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjects) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockTasks struct{ mock.Mock }

func (m *mockTasks) Create(ctx context.Context, userID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	args := m.Called(ctx, userID, req)
	if t := args.Get(0); t != nil {
		return t.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTasks) List(ctx context.Context, userID uuid.UUID, query ports.TaskQuery) (*ports.Page[*entities.Task], error) {
	args := m.Called(ctx, userID, query)
	if p := args.Get(0); p != nil {
		return p.(*ports.Page[*entities.Task]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTasks) Get(ctx context.Context, userID, id uuid.UUID) (*entities.Task, error) {
	args := m.Called(ctx, userID, id)
	if t := args.Get(0); t != nil {
		return t.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTasks) Update(ctx context.Context, userID, id uuid.UUID, req ports.UpdateTaskRequest) (*entities.Task, error) {
	args := m.Called(ctx, userID, id, req)
	if t := args.Get(0); t != nil {
		return t.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTasks) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockNotes struct{ mock.Mock }

func (m *mockNotes) Upsert(ctx context.Context, userID uuid.UUID, target entities.NoteTarget, input ports.NoteInput, noteID *uuid.UUID) (*entities.Note, error) {
	args := m.Called(ctx, userID, target, input, noteID)
	if n := args.Get(0); n != nil {
		return n.(*entities.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotes) Get(ctx context.Context, userID, id uuid.UUID) (*entities.Note, error) {
	args := m.Called(ctx, userID, id)
	if n := args.Get(0); n != nil {
		return n.(*entities.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotes) GetByTask(ctx context.Context, userID, taskID uuid.UUID) (*entities.Note, error) {
	args := m.Called(ctx, userID, taskID)
	if n := args.Get(0); n != nil {
		return n.(*entities.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotes) Find(ctx context.Context, userID uuid.UUID, id, taskID *uuid.UUID) (*entities.Note, error) {
	args := m.Called(ctx, userID, id, taskID)
	if n := args.Get(0); n != nil {
		return n.(*entities.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotes) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockNotes) DeleteByTask(ctx context.Context, userID, taskID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Bool(0), args.Error(1)
}

func (m *mockNotes) TasksWithNotes(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID, taskIDs)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *mockNotes) ListMine(ctx context.Context, userID uuid.UUID) ([]*entities.Note, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.Note), args.Error(1)
}
