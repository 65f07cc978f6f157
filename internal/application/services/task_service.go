package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// TaskService handles task-related operations
type TaskService struct {
	tasks  ports.TaskRepository
	logger *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(tasks ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		tasks:  tasks,
		logger: logger.WithComponent("tasks"),
	}
}

// Create creates a task owned by userID. Status defaults to todo and
// priority to medium. The project reference is stored as given.
func (s *TaskService) Create(ctx context.Context, userID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	task := &entities.Task{
		Title:     req.Title,
		Status:    entities.TaskStatusTodo,
		Priority:  entities.PriorityMedium,
		Deadline:  req.Deadline.UTC(),
		ProjectID: req.ProjectID,
		UserID:    userID,
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if err := checkTask(task); err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.LogUserAction(userID.String(), "task_created", map[string]interface{}{"task_id": task.ID.String()})
	return task, nil
}

// List returns one page of the user's tasks, soonest deadline first
func (s *TaskService) List(ctx context.Context, userID uuid.UUID, query ports.TaskQuery) (*ports.Page[*entities.Task], error) {
	if query.Status != nil && !query.Status.IsValid() {
		return nil, entities.ErrInvalidStatus
	}
	if query.Priority != nil && !query.Priority.IsValid() {
		return nil, entities.ErrInvalidPriority
	}

	page, limit := normalizePage(query.Page, query.Limit)
	filter := ports.TaskFilter{
		UserID:        userID,
		ProjectID:     query.ProjectID,
		Status:        query.Status,
		Priority:      query.Priority,
		DeadlineStart: query.DeadlineStart,
		DeadlineEnd:   query.DeadlineEnd,
		Limit:         limit,
		Offset:        (page - 1) * limit,
	}

	total, err := s.tasks.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*entities.Task{}
	}

	return &ports.Page[*entities.Task]{
		Items:       tasks,
		Total:       total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
		Limit:       limit,
	}, nil
}

func (s *TaskService) Get(ctx context.Context, userID, id uuid.UUID) (*entities.Task, error) {
	return s.tasks.GetByID(ctx, userID, id)
}

// Update applies the supplied fields to an owned task
func (s *TaskService) Update(ctx context.Context, userID, id uuid.UUID, req ports.UpdateTaskRequest) (*entities.Task, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	apply(&task.Title, req.Title)
	apply(&task.Status, req.Status)
	apply(&task.Priority, req.Priority)
	if req.Deadline != nil {
		task.Deadline = req.Deadline.UTC()
	}
	switch {
	case req.ClearProject:
		task.ProjectID = nil
		task.Project = nil
	case req.ProjectID != nil:
		applyRef(&task.ProjectID, req.ProjectID)
		task.Project = nil
	}
	if err := checkTask(task); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.tasks.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.LogUserAction(userID.String(), "task_deleted", map[string]interface{}{"task_id": id.String()})
	return nil
}

func checkTask(task *entities.Task) error {
	if !task.Status.IsValid() {
		return entities.ErrInvalidStatus
	}
	if !task.Priority.IsValid() {
		return entities.ErrInvalidPriority
	}
	return nil
}

// normalizePage fills in defaults and caps the page size
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
