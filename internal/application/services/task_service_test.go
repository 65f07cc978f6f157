package services_test

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/taskify/core/internal/adapters/repository"
	"github.com/taskify/core/internal/application/services"
	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

func TestTaskService_Create_Defaults(t *testing.T) {
	// Arrange
	repo := new(MockTaskRepository)
	svc := services.NewTaskService(repo, logger.NewNop())
	owner := uuid.New()
	deadline := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Task")).Return(nil)

	// Act
	task, err := svc.Create(context.Background(), owner, ports.CreateTaskRequest{Title: "Write report", Deadline: entities.NewTimestamp(deadline)})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entities.TaskStatusTodo, task.Status)
	assert.Equal(t, entities.PriorityMedium, task.Priority)
	assert.Equal(t, owner, task.UserID)
	assert.Equal(t, deadline, task.Deadline)
	assert.Nil(t, task.ProjectID)
}

func TestTaskService_Create_RequiresDeadline(t *testing.T) {
	repo := new(MockTaskRepository)
	svc := services.NewTaskService(repo, logger.NewNop())

	_, err := svc.Create(context.Background(), uuid.New(), ports.CreateTaskRequest{Title: "No deadline"})

	assert.ErrorIs(t, err, entities.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_Create_RejectsUnknownStatus(t *testing.T) {
	svc := services.NewTaskService(new(MockTaskRepository), logger.NewNop())
	_, err := svc.Create(context.Background(), uuid.New(), ports.CreateTaskRequest{
		Title:    "x",
		Status:   "blocked",
		Deadline: entities.NewTimestamp(time.Now()),
	})

	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestTaskService_List_Pagination(t *testing.T) {
	repo := new(MockTaskRepository)
	svc := services.NewTaskService(repo, logger.NewNop())
	owner := uuid.New()

	expected := ports.TaskFilter{UserID: owner, Limit: 10, Offset: 10}
	page := make([]*entities.Task, 5)
	for i := range page {
		page[i] = &entities.Task{ID: uuid.New(), UserID: owner}
	}
	repo.On("Count", mock.Anything, expected).Return(15, nil)
	repo.On("List", mock.Anything, expected).Return(page, nil)

	result, err := svc.List(context.Background(), owner, ports.TaskQuery{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, result.Items, 5)
	assert.Equal(t, 15, result.Total)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, 2, result.CurrentPage)
	repo.AssertExpectations(t)
}

func TestTaskService_List_NormalizesPaging(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 10, 0},
		{"caps limit", 1, 1000, 100, 0},
		{"negative page", -3, 20, 20, 0},
		{"third page", 3, 25, 25, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTaskRepository)
			svc := services.NewTaskService(repo, logger.NewNop())
			owner := uuid.New()
			filter := ports.TaskFilter{UserID: owner, Limit: tt.wantLimit, Offset: tt.wantOffset}

			repo.On("Count", mock.Anything, filter).Return(0, nil)
			repo.On("List", mock.Anything, filter).Return(nil, nil)

			result, err := svc.List(context.Background(), owner, ports.TaskQuery{Page: tt.page, Limit: tt.limit})

			require.NoError(t, err)
			assert.NotNil(t, result.Items)
			assert.Empty(t, result.Items)
			assert.Equal(t, 0, result.TotalPages)
			repo.AssertExpectations(t)
		})
	}
}

func TestTaskService_List_PassesFilters(t *testing.T) {
	repo := new(MockTaskRepository)
	svc := services.NewTaskService(repo, logger.NewNop())
	owner, project := uuid.New(), uuid.New()
	status := entities.TaskStatusDone
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	filter := ports.TaskFilter{UserID: owner, ProjectID: &project, Status: &status, DeadlineStart: &start, Limit: 10}
	repo.On("Count", mock.Anything, filter).Return(1, nil)
	repo.On("List", mock.Anything, filter).Return([]*entities.Task{{ID: uuid.New()}}, nil)

	result, err := svc.List(context.Background(), owner, ports.TaskQuery{ProjectID: &project, Status: &status, DeadlineStart: &start})

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalPages)
	repo.AssertExpectations(t)
}

func TestTaskService_List_RejectsUnknownPriority(t *testing.T) {
	svc := services.NewTaskService(new(MockTaskRepository), logger.NewNop())
	priority := entities.Priority("urgent")

	_, err := svc.List(context.Background(), uuid.New(), ports.TaskQuery{Priority: &priority})

	assert.ErrorIs(t, err, entities.ErrInvalidPriority)
}

func TestTaskService_Update_Partial(t *testing.T) {
	repo := new(MockTaskRepository)
	svc := services.NewTaskService(repo, logger.NewNop())
	owner := uuid.New()
	existing := &entities.Task{
		ID:       uuid.New(),
		Title:    "Old",
		Status:   entities.TaskStatusTodo,
		Priority: entities.PriorityLow,
		UserID:   owner,
	}
	done := entities.TaskStatusDone

	repo.On("GetByID", mock.Anything, owner, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	task, err := svc.Update(context.Background(), owner, existing.ID, ports.UpdateTaskRequest{Status: &done})

	require.NoError(t, err)
	assert.Equal(t, "Old", task.Title)
	assert.Equal(t, entities.TaskStatusDone, task.Status)
	assert.Equal(t, entities.PriorityLow, task.Priority)
}

func TestTaskService_OtherUsersTask(t *testing.T) {
	repo := new(MockTaskRepository)
	svc := services.NewTaskService(repo, logger.NewNop())
	stranger, id := uuid.New(), uuid.New()
	title := "hijack"

	repo.On("GetByID", mock.Anything, stranger, id).Return(nil, entities.ErrTaskNotFound)
	repo.On("Delete", mock.Anything, stranger, id).Return(entities.ErrTaskNotFound)

	_, err := svc.Get(context.Background(), stranger, id)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	_, err = svc.Update(context.Background(), stranger, id, ports.UpdateTaskRequest{Title: &title})
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	err = svc.Delete(context.Background(), stranger, id)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTaskService_StoresDeadlinesInUTC(t *testing.T) {
	// Arrange
	repo := new(MockTaskRepository)
	svc := services.NewTaskService(repo, logger.NewNop())
	owner := uuid.New()
	deadline := time.Date(2024, 3, 1, 23, 30, 0, 0, time.FixedZone("", 2*60*60))

	repo.On("Create", mock.Anything, mock.MatchedBy(func(task *entities.Task) bool {
		return task.Deadline.Location() == time.UTC
	})).Return(nil)

	// Act
	task, err := svc.Create(context.Background(), owner, ports.CreateTaskRequest{
		Title:    "Write report",
		Deadline: &entities.Timestamp{Time: deadline},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T21:30:00Z", task.Deadline.Format(time.RFC3339))
	repo.AssertExpectations(t)

	repo.On("GetByID", mock.Anything, owner, task.ID).Return(task, nil)
	repo.On("Update", mock.Anything, task).Return(nil)

	updated, err := svc.Update(context.Background(), owner, task.ID, ports.UpdateTaskRequest{
		Deadline: &entities.Timestamp{Time: deadline.Add(time.Hour)},
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T22:30:00Z", updated.Deadline.Format(time.RFC3339))
}

func TestTaskService_Update_ClearProject(t *testing.T) {
	repo := new(MockTaskRepository)
	svc := services.NewTaskService(repo, logger.NewNop())
	owner, projectID := uuid.New(), uuid.New()
	existing := &entities.Task{
		ID:        uuid.New(),
		Title:     "Old",
		Status:    entities.TaskStatusTodo,
		Priority:  entities.PriorityLow,
		ProjectID: &projectID,
		Project:   &entities.Project{ID: projectID, Name: "Launch"},
		UserID:    owner,
	}

	repo.On("GetByID", mock.Anything, owner, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	task, err := svc.Update(context.Background(), owner, existing.ID, ports.UpdateTaskRequest{ClearProject: true})

	require.NoError(t, err)
	assert.Nil(t, task.ProjectID)
	assert.Nil(t, task.Project)
	assert.Equal(t, "Old", task.Title)
}

// utcTime matches a time argument equal to want and expressed in UTC
type utcTime struct{ want time.Time }

func (a utcTime) Match(v driver.Value) bool {
	t, ok := v.(time.Time)
	return ok && t.Equal(a.want) && t.Location() == time.UTC
}

func TestTaskService_CreateThenGet_RoundTrip(t *testing.T) {
	// Arrange
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	svc := services.NewTaskService(repository.NewTaskRepository(sqlx.NewDb(db, "postgres")), logger.NewNop())
	owner := uuid.New()
	plusTwo := time.FixedZone("", 2*60*60)
	deadline := time.Date(2025, 1, 31, 1, 0, 0, 0, plusTwo)
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, plusTwo)

	dbMock.ExpectQuery(`INSERT INTO tasks`).
		WithArgs(sqlmock.AnyArg(), "Write report", "todo", "high", utcTime{want: deadline}, nil, owner).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(stamp, stamp))

	// Act
	created, err := svc.Create(context.Background(), owner, ports.CreateTaskRequest{
		Title:    "Write report",
		Priority: entities.PriorityHigh,
		Deadline: &entities.Timestamp{Time: deadline},
	})
	require.NoError(t, err)

	dbMock.ExpectQuery(`FROM tasks t`).
		WithArgs(created.ID, owner).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "status", "priority", "deadline", "project_id", "user_id",
			"created_at", "updated_at",
			"project_name", "project_description", "project_created_at", "project_updated_at",
		}).AddRow(
			created.ID.String(), "Write report", "todo", "high", deadline, nil, owner.String(),
			stamp, stamp, nil, nil, nil, nil,
		))

	fetched, err := svc.Get(context.Background(), owner, created.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.Priority, fetched.Priority)
	assert.Equal(t, created.Status, fetched.Status)
	assert.Equal(t, created.Deadline.Format(time.RFC3339), fetched.Deadline.Format(time.RFC3339))
	assert.Equal(t, "2025-01-30T23:00:00Z", fetched.Deadline.Format(time.RFC3339))
	assert.Equal(t, created.CreatedAt.Format(time.RFC3339), fetched.CreatedAt.Format(time.RFC3339))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTaskService_LogsUserActions(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	repo := new(MockTaskRepository)
	svc := services.NewTaskService(repo, &logger.Logger{SugaredLogger: zap.New(core).Sugar()})
	owner := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Task")).Return(nil)
	task, err := svc.Create(context.Background(), owner, ports.CreateTaskRequest{Title: "x", Deadline: entities.NewTimestamp(time.Now())})
	require.NoError(t, err)

	repo.On("Delete", mock.Anything, owner, task.ID).Return(nil)
	require.NoError(t, svc.Delete(context.Background(), owner, task.ID))

	entries := logs.FilterMessage("User action").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "task_created", entries[0].ContextMap()["action"])
	assert.Equal(t, "task_deleted", entries[1].ContextMap()["action"])
	assert.Equal(t, owner.String(), entries[1].ContextMap()["user_id"])
	assert.Equal(t, task.ID.String(), entries[1].ContextMap()["task_id"])
}
