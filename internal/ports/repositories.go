package ports

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/taskify/core/internal/domain/entities"
)

// ErrCacheMiss is returned by CacheRepository.Get when the key is absent
var ErrCacheMiss = errors.New("cache miss")

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

// ProjectRepository defines the interface for project data operations.
// Every method is scoped to the owning user.
type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Project, error)
}

// TaskRepository defines the interface for task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, filter TaskFilter) ([]*entities.Task, error)
	Count(ctx context.Context, filter TaskFilter) (int, error)
}

// EventRepository defines the interface for event data operations
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error)
}

// NoteRepository defines the interface for note data operations
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Note, error)
	// FindByTarget returns entities.ErrNoteNotFound when the user has no note
	// attached to target.
	FindByTarget(ctx context.Context, userID uuid.UUID, target entities.NoteTarget) (*entities.Note, error)
	Update(ctx context.Context, note *entities.Note) error
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
	DeleteByTask(ctx context.Context, userID, taskID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Note, error)
	TaskIDsWithNotes(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) ([]uuid.UUID, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
}

// TaskFilter narrows a task listing. UserID is always applied.
type TaskFilter struct {
	UserID        uuid.UUID
	ProjectID     *uuid.UUID
	Status        *entities.TaskStatus
	Priority      *entities.Priority
	DeadlineStart *time.Time
	DeadlineEnd   *time.Time
	Limit         int
	Offset        int
}
