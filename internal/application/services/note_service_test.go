package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskify/core/internal/application/services"
	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

func fixedDate() time.Time {
	return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestNoteService_Upsert_CreatesThenUpdates(t *testing.T) {
	// Arrange
	repo := new(MockNoteRepository)
	svc := services.NewNoteService(repo, logger.NewNop())
	owner, taskID := uuid.New(), uuid.New()
	target := entities.NoteTarget{TaskID: &taskID}

	repo.On("FindByTarget", mock.Anything, owner, target).Return(nil, entities.ErrNoteNotFound).Once()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Note")).Return(nil).Once()

	// Act
	created, err := svc.Upsert(context.Background(), owner, target, ports.NoteInput{TextContent: strPtr("first")}, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Untitled Note", created.Title)
	assert.Equal(t, entities.NoteTypeText, created.Type)
	assert.Equal(t, "first", created.TextContent)
	assert.NotNil(t, created.CodeBlocks)
	assert.Equal(t, &taskID, created.TaskID)

	repo.On("FindByTarget", mock.Anything, owner, target).Return(created, nil).Once()
	repo.On("Update", mock.Anything, created).Return(nil).Once()

	updated, err := svc.Upsert(context.Background(), owner, target, ports.NoteInput{TextContent: strPtr("second")}, nil)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "second", updated.TextContent)
	assert.Equal(t, "Untitled Note", updated.Title)
	repo.AssertNumberOfCalls(t, "Create", 1)
	repo.AssertExpectations(t)
}

func TestNoteService_Upsert_ByID(t *testing.T) {
	repo := new(MockNoteRepository)
	svc := services.NewNoteService(repo, logger.NewNop())
	owner := uuid.New()
	note := &entities.Note{ID: uuid.New(), UserID: owner, Title: "Plan", Type: entities.NoteTypeText}
	code := entities.NoteTypeCode
	blocks := []entities.CodeBlock{{Language: "go", Code: "package main"}}

	repo.On("GetByID", mock.Anything, owner, note.ID).Return(note, nil)
	repo.On("Update", mock.Anything, note).Return(nil)

	updated, err := svc.Upsert(context.Background(), owner, entities.NoteTarget{}, ports.NoteInput{Type: &code, CodeBlocks: &blocks}, &note.ID)

	require.NoError(t, err)
	assert.Equal(t, "Plan", updated.Title)
	assert.Equal(t, entities.NoteTypeCode, updated.Type)
	assert.Len(t, updated.CodeBlocks, 1)
	repo.AssertNotCalled(t, "FindByTarget", mock.Anything, mock.Anything, mock.Anything)
}

func TestNoteService_Upsert_EmptyTargetCreates(t *testing.T) {
	repo := new(MockNoteRepository)
	svc := services.NewNoteService(repo, logger.NewNop())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Note")).Return(nil)

	note, err := svc.Upsert(context.Background(), uuid.New(), entities.NoteTarget{}, ports.NoteInput{Title: strPtr("  ")}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Untitled Note", note.Title)
	assert.True(t, note.Target().IsEmpty())
	repo.AssertNotCalled(t, "FindByTarget", mock.Anything, mock.Anything, mock.Anything)
}

func TestNoteService_Upsert_RejectsUnknownType(t *testing.T) {
	svc := services.NewNoteService(new(MockNoteRepository), logger.NewNop())
	kind := entities.NoteType("video")

	_, err := svc.Upsert(context.Background(), uuid.New(), entities.NoteTarget{}, ports.NoteInput{Type: &kind}, nil)

	assert.ErrorIs(t, err, entities.ErrInvalidNoteType)
}

func TestNoteService_Upsert_OtherUsersNote(t *testing.T) {
	repo := new(MockNoteRepository)
	svc := services.NewNoteService(repo, logger.NewNop())
	stranger, id := uuid.New(), uuid.New()

	repo.On("GetByID", mock.Anything, stranger, id).Return(nil, entities.ErrNoteNotFound)

	_, err := svc.Upsert(context.Background(), stranger, entities.NoteTarget{}, ports.NoteInput{}, &id)

	assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNoteService_Find(t *testing.T) {
	repo := new(MockNoteRepository)
	svc := services.NewNoteService(repo, logger.NewNop())
	owner, taskID := uuid.New(), uuid.New()
	note := &entities.Note{ID: uuid.New(), UserID: owner, TaskID: &taskID}

	repo.On("FindByTarget", mock.Anything, owner, entities.NoteTarget{TaskID: &taskID}).Return(note, nil)
	repo.On("GetByID", mock.Anything, owner, note.ID).Return(note, nil)

	byTask, err := svc.Find(context.Background(), owner, nil, &taskID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, byTask.ID)

	byID, err := svc.Find(context.Background(), owner, &note.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, note.ID, byID.ID)

	_, err = svc.Find(context.Background(), owner, nil, nil)
	assert.ErrorIs(t, err, entities.ErrNoteLocatorMissing)
}

func TestNoteService_TasksWithNotes_EmptyInput(t *testing.T) {
	repo := new(MockNoteRepository)
	svc := services.NewNoteService(repo, logger.NewNop())

	ids, err := svc.TasksWithNotes(context.Background(), uuid.New(), nil)

	require.NoError(t, err)
	assert.Empty(t, ids)
	repo.AssertNotCalled(t, "TaskIDsWithNotes", mock.Anything, mock.Anything, mock.Anything)
}

func TestNoteService_ListMine_NeverNil(t *testing.T) {
	repo := new(MockNoteRepository)
	svc := services.NewNoteService(repo, logger.NewNop())
	owner := uuid.New()

	repo.On("ListByUser", mock.Anything, owner).Return(nil, nil)

	notes, err := svc.ListMine(context.Background(), owner)

	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}
