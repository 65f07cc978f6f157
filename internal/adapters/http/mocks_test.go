package http_test

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	handlers "github.com/taskify/core/internal/adapters/http"
	"github.com/taskify/core/internal/application/services"
	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/ports"
)

type structValidator struct {
	v *validator.Validate
}

func (sv structValidator) Validate(i interface{}) error {
	return sv.v.Struct(i)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = structValidator{v: services.Validator()}
	return e
}

// asUser stands in for the auth middleware
func asUser(id uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(handlers.UserIDKey, id)
			return next(c)
		}
	}
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req ports.SignupRequest) (*ports.AuthResult, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*ports.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req ports.LoginRequest) (*ports.AuthResult, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*ports.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) GoogleLogin(ctx context.Context, profile ports.GoogleProfile) (*ports.AuthResult, error) {
	args := m.Called(ctx, profile)
	if r := args.Get(0); r != nil {
		return r.(*ports.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*ports.Claims, error) {
	args := m.Called(token)
	if c := args.Get(0); c != nil {
		return c.(*ports.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: "token", Value: token, Path: "/", HttpOnly: true, MaxAge: 604800}
}

func (m *MockAuthService) ClearSessionCookie() *http.Cookie {
	return &http.Cookie{Name: "token", Value: "", Path: "/", HttpOnly: true, MaxAge: -1}
}

func (m *MockAuthService) CookieName() string { return "token" }

type MockOAuthProvider struct {
	mock.Mock
}

func (m *MockOAuthProvider) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (m *MockOAuthProvider) Exchange(ctx context.Context, code string) (*ports.GoogleProfile, error) {
	args := m.Called(ctx, code)
	if p := args.Get(0); p != nil {
		return p.(*ports.GoogleProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, userID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	args := m.Called(ctx, userID, req)
	if t := args.Get(0); t != nil {
		return t.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) List(ctx context.Context, userID uuid.UUID, query ports.TaskQuery) (*ports.Page[*entities.Task], error) {
	args := m.Called(ctx, userID, query)
	if p := args.Get(0); p != nil {
		return p.(*ports.Page[*entities.Task]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, userID, id uuid.UUID) (*entities.Task, error) {
	args := m.Called(ctx, userID, id)
	if t := args.Get(0); t != nil {
		return t.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, userID, id uuid.UUID, req ports.UpdateTaskRequest) (*entities.Task, error) {
	args := m.Called(ctx, userID, id, req)
	if t := args.Get(0); t != nil {
		return t.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, userID uuid.UUID, req ports.CreateProjectRequest) (*entities.Project, error) {
	args := m.Called(ctx, userID, req)
	if p := args.Get(0); p != nil {
		return p.(*entities.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, userID uuid.UUID) ([]*entities.Project, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, userID, id uuid.UUID) (*entities.Project, error) {
	args := m.Called(ctx, userID, id)
	if p := args.Get(0); p != nil {
		return p.(*entities.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, userID, id uuid.UUID, req ports.UpdateProjectRequest) (*entities.Project, error) {
	args := m.Called(ctx, userID, id, req)
	if p := args.Get(0); p != nil {
		return p.(*entities.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Create(ctx context.Context, userID uuid.UUID, req ports.CreateEventRequest) (*entities.Event, error) {
	args := m.Called(ctx, userID, req)
	if e := args.Get(0); e != nil {
		return e.(*entities.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) List(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.Event), args.Error(1)
}

func (m *MockEventService) Get(ctx context.Context, userID, id uuid.UUID) (*entities.Event, error) {
	args := m.Called(ctx, userID, id)
	if e := args.Get(0); e != nil {
		return e.(*entities.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) Update(ctx context.Context, userID, id uuid.UUID, req ports.UpdateEventRequest) (*entities.Event, error) {
	args := m.Called(ctx, userID, id, req)
	if e := args.Get(0); e != nil {
		return e.(*entities.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}
