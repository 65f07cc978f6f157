package services_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/ports"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	if args.Error(0) == nil {
		project.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Project, error) {
	args := m.Called(ctx, userID, id)
	if p := args.Get(0); p != nil {
		return p.(*entities.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockProjectRepository) List(ctx context.Context, userID uuid.UUID) ([]*entities.Project, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.Project), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entities.Task) error {
	args := m.Called(ctx, task)
	if args.Error(0) == nil {
		task.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Task, error) {
	args := m.Called(ctx, userID, id)
	if t := args.Get(0); t != nil {
		return t.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *entities.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockTaskRepository) List(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, error) {
	args := m.Called(ctx, filter)
	if t := args.Get(0); t != nil {
		return t.([]*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskRepository) Count(ctx context.Context, filter ports.TaskFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *entities.Event) error {
	args := m.Called(ctx, event)
	if args.Error(0) == nil {
		event.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Event, error) {
	args := m.Called(ctx, userID, id)
	if e := args.Get(0); e != nil {
		return e.(*entities.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, event *entities.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockEventRepository) List(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.Event), args.Error(1)
}

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *entities.Note) error {
	args := m.Called(ctx, note)
	if args.Error(0) == nil {
		note.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockNoteRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Note, error) {
	args := m.Called(ctx, userID, id)
	if n := args.Get(0); n != nil {
		return n.(*entities.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNoteRepository) FindByTarget(ctx context.Context, userID uuid.UUID, target entities.NoteTarget) (*entities.Note, error) {
	args := m.Called(ctx, userID, target)
	if n := args.Get(0); n != nil {
		return n.(*entities.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNoteRepository) Update(ctx context.Context, note *entities.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockNoteRepository) DeleteByTask(ctx context.Context, userID, taskID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNoteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Note, error) {
	args := m.Called(ctx, userID)
	if n := args.Get(0); n != nil {
		return n.([]*entities.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNoteRepository) TaskIDsWithNotes(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID, taskIDs)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// memoryCache is a map-backed CacheRepository
type memoryCache struct {
	items map[string]interface{}
	sets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string]interface{}{}}
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.items[key] = value
	c.sets++
	return nil
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	v, ok := c.items[key]
	if !ok {
		return ports.ErrCacheMiss
	}
	if u, ok := v.(*entities.User); ok {
		*(dest.(*entities.User)) = *u
	}
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	delete(c.items, key)
	return nil
}
