package ports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/taskify/core/internal/domain/entities"
)

// AuthService interface for authentication operations
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
	GoogleLogin(ctx context.Context, profile GoogleProfile) (*AuthResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*entities.User, error)
	ValidateToken(tokenString string) (*Claims, error)
	SessionCookie(token string) *http.Cookie
	ClearSessionCookie() *http.Cookie
	CookieName() string
}

// OAuthProvider performs the authorization code flow against an identity provider
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*GoogleProfile, error)
}

// ProjectService interface for project management operations
type ProjectService interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateProjectRequest) (*entities.Project, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Project, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*entities.Project, error)
	Update(ctx context.Context, userID, id uuid.UUID, req UpdateProjectRequest) (*entities.Project, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// TaskService interface for task management operations
type TaskService interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateTaskRequest) (*entities.Task, error)
	List(ctx context.Context, userID uuid.UUID, query TaskQuery) (*Page[*entities.Task], error)
	Get(ctx context.Context, userID, id uuid.UUID) (*entities.Task, error)
	Update(ctx context.Context, userID, id uuid.UUID, req UpdateTaskRequest) (*entities.Task, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// EventService interface for event operations
type EventService interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateEventRequest) (*entities.Event, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*entities.Event, error)
	Update(ctx context.Context, userID, id uuid.UUID, req UpdateEventRequest) (*entities.Event, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// NoteService interface for note operations
type NoteService interface {
	Upsert(ctx context.Context, userID uuid.UUID, target entities.NoteTarget, input NoteInput, noteID *uuid.UUID) (*entities.Note, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*entities.Note, error)
	GetByTask(ctx context.Context, userID, taskID uuid.UUID) (*entities.Note, error)
	Find(ctx context.Context, userID uuid.UUID, id, taskID *uuid.UUID) (*entities.Note, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
	DeleteByTask(ctx context.Context, userID, taskID uuid.UUID) (bool, error)
	TasksWithNotes(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) ([]uuid.UUID, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entities.Note, error)
}

// Auth related types
type SignupRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,max=72"`
	Name     *string `json:"name" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is returned by every successful sign-in path
type AuthResult struct {
	User  *entities.User `json:"user"`
	Token string         `json:"token"`
}

// Claims is the verified token payload
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name,omitempty"`
}

// GoogleProfile carries the identity returned by Google
type GoogleProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Project related types
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// Task related types
type CreateTaskRequest struct {
	Title     string              `json:"title" validate:"required,max=500"`
	Status    entities.TaskStatus `json:"status" validate:"omitempty,oneof=todo in-progress done"`
	Priority  entities.Priority   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline  *entities.Timestamp `json:"deadline" validate:"required" swaggertype:"string" format:"date-time"`
	ProjectID *uuid.UUID          `json:"projectId"`
}

// UpdateTaskRequest changes the fields that are present. An explicit null or
// empty projectId detaches the task from its project.
type UpdateTaskRequest struct {
	Title     *string              `json:"title" validate:"omitempty,min=1,max=500"`
	Status    *entities.TaskStatus `json:"status" validate:"omitempty,oneof=todo in-progress done"`
	Priority  *entities.Priority   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline  *entities.Timestamp  `json:"deadline" swaggertype:"string" format:"date-time"`
	ProjectID *uuid.UUID           `json:"projectId"`

	ClearProject bool `json:"-"`
}

// UnmarshalJSON tells an absent projectId apart from an explicit null or ""
func (r *UpdateTaskRequest) UnmarshalJSON(data []byte) error {
	type fields UpdateTaskRequest
	var raw struct {
		fields
		ProjectID json.RawMessage `json:"projectId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = UpdateTaskRequest(raw.fields)
	switch string(raw.ProjectID) {
	case "":
	case "null", `""`:
		r.ClearProject = true
	default:
		var id uuid.UUID
		if err := json.Unmarshal(raw.ProjectID, &id); err != nil {
			return fmt.Errorf("%w: invalid projectId", entities.ErrInvalidInput)
		}
		r.ProjectID = &id
	}
	return nil
}

// TaskQuery is the caller-facing listing request; the service turns it into a TaskFilter.
type TaskQuery struct {
	ProjectID     *uuid.UUID
	Status        *entities.TaskStatus
	Priority      *entities.Priority
	DeadlineStart *time.Time
	DeadlineEnd   *time.Time
	Page          int
	Limit         int
}

// Event related types
type CreateEventRequest struct {
	Title       string              `json:"title" validate:"required,max=200"`
	Description string              `json:"description" validate:"max=2000"`
	Date        *entities.Timestamp `json:"date" validate:"required" swaggertype:"string" format:"date-time"`
}

type UpdateEventRequest struct {
	Title       *string             `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string             `json:"description" validate:"omitempty,max=2000"`
	Date        *entities.Timestamp `json:"date" swaggertype:"string" format:"date-time"`
}

// NoteInput carries the note fields a caller wants to set. Nil fields are left alone.
type NoteInput struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	TextContent *string               `json:"textContent"`
	CodeBlocks  *[]entities.CodeBlock `json:"codeBlocks"`
	DrawingData *string               `json:"drawingData"`
	Type        *entities.NoteType    `json:"type"`
}

// Page is a slice of results plus pagination bookkeeping
type Page[T any] struct {
	Items       []T `json:"items"`
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}
