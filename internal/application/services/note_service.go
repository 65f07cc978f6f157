package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

const defaultNoteTitle = "Untitled Note"

// NoteService handles notes attached to tasks, projects and events.
// A user keeps at most one note per target; writes to a target update it.
type NoteService struct {
	notes  ports.NoteRepository
	logger *logger.Logger
}

func NewNoteService(notes ports.NoteRepository, logger *logger.Logger) *NoteService {
	return &NoteService{
		notes:  notes,
		logger: logger.WithComponent("notes"),
	}
}

// Upsert writes input into a note. With noteID set, that note is updated.
// Otherwise the note already attached to target is updated, or a new one is
// created. An empty target always creates a new unattached note.
func (s *NoteService) Upsert(ctx context.Context, userID uuid.UUID, target entities.NoteTarget, input ports.NoteInput, noteID *uuid.UUID) (*entities.Note, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return nil, entities.ErrInvalidNoteType
	}

	var existing *entities.Note
	var err error
	switch {
	case noteID != nil:
		existing, err = s.notes.GetByID(ctx, userID, *noteID)
	case !target.IsEmpty():
		existing, err = s.notes.FindByTarget(ctx, userID, target)
		if errors.Is(err, entities.ErrNoteNotFound) {
			existing, err = nil, nil
		}
	}
	if err != nil {
		return nil, err
	}

	if existing != nil {
		retarget(existing, target)
		applyNoteInput(existing, input)
		if err := s.notes.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	note := &entities.Note{
		UserID:     userID,
		TaskID:     target.TaskID,
		ProjectID:  target.ProjectID,
		EventID:    target.EventID,
		Title:      defaultNoteTitle,
		CodeBlocks: entities.CodeBlocks{},
		Type:       entities.NoteTypeText,
	}
	applyNoteInput(note, input)
	if strings.TrimSpace(note.Title) == "" {
		note.Title = defaultNoteTitle
	}

	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}

	s.logger.LogUserAction(userID.String(), "note_created", map[string]interface{}{"note_id": note.ID.String()})
	return note, nil
}

func (s *NoteService) Get(ctx context.Context, userID, id uuid.UUID) (*entities.Note, error) {
	return s.notes.GetByID(ctx, userID, id)
}

// GetByTask returns the note attached to a task
func (s *NoteService) GetByTask(ctx context.Context, userID, taskID uuid.UUID) (*entities.Note, error) {
	return s.notes.FindByTarget(ctx, userID, entities.NoteTarget{TaskID: &taskID})
}

// Find looks a note up by id, or failing that by the task it is attached to
func (s *NoteService) Find(ctx context.Context, userID uuid.UUID, id, taskID *uuid.UUID) (*entities.Note, error) {
	switch {
	case id != nil:
		return s.notes.GetByID(ctx, userID, *id)
	case taskID != nil:
		return s.GetByTask(ctx, userID, *taskID)
	default:
		return nil, entities.ErrNoteLocatorMissing
	}
}

// Delete reports whether a note was removed
func (s *NoteService) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	ok, err := s.notes.Delete(ctx, userID, id)
	if ok {
		s.logger.LogUserAction(userID.String(), "note_deleted", map[string]interface{}{"note_id": id.String()})
	}
	return ok, err
}

func (s *NoteService) DeleteByTask(ctx context.Context, userID, taskID uuid.UUID) (bool, error) {
	ok, err := s.notes.DeleteByTask(ctx, userID, taskID)
	if ok {
		s.logger.LogUserAction(userID.String(), "note_deleted", map[string]interface{}{"task_id": taskID.String()})
	}
	return ok, err
}

// TasksWithNotes filters taskIDs down to the ones the user has a note for
func (s *NoteService) TasksWithNotes(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(taskIDs) == 0 {
		return []uuid.UUID{}, nil
	}
	return s.notes.TaskIDsWithNotes(ctx, userID, taskIDs)
}

// ListMine returns the user's notes, most recently edited first
func (s *NoteService) ListMine(ctx context.Context, userID uuid.UUID) ([]*entities.Note, error) {
	notes, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []*entities.Note{}
	}
	return notes, nil
}

func applyNoteInput(note *entities.Note, input ports.NoteInput) {
	apply(&note.Title, input.Title)
	apply(&note.Description, input.Description)
	apply(&note.TextContent, input.TextContent)
	apply(&note.DrawingData, input.DrawingData)
	apply(&note.Type, input.Type)
	if input.CodeBlocks != nil {
		note.CodeBlocks = append(entities.CodeBlocks{}, (*input.CodeBlocks)...)
	}
}

// retarget moves a note onto whichever target fields the caller supplied
func retarget(note *entities.Note, target entities.NoteTarget) {
	if target.TaskID != nil {
		note.TaskID = target.TaskID
	}
	if target.ProjectID != nil {
		note.ProjectID = target.ProjectID
	}
	if target.EventID != nil {
		note.EventID = target.EventID
	}
}
