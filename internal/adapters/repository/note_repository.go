package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/ports"
)

const noteColumns = `id, user_id, task_id, project_id, event_id, title, description,
	text_content, code_blocks, drawing_data, type, created_at, updated_at`

// NoteRepositoryImpl implements the NoteRepository interface
type NoteRepositoryImpl struct {
	db *sqlx.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *sqlx.DB) ports.NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entities.Note) error {
	query := `
		INSERT INTO notes (id, user_id, task_id, project_id, event_id, title, description,
			text_content, code_blocks, drawing_data, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	if note.CodeBlocks == nil {
		note.CodeBlocks = entities.CodeBlocks{}
	}

	err := r.db.QueryRowContext(ctx, query,
		note.ID, note.UserID, note.TaskID, note.ProjectID, note.EventID,
		note.Title, note.Description, note.TextContent, note.CodeBlocks,
		note.DrawingData, note.Type,
	).Scan(&note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	inUTC(&note.CreatedAt, &note.UpdatedAt)
	return nil
}

func (r *NoteRepositoryImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND user_id = $2`

	var note entities.Note
	if err := r.db.GetContext(ctx, &note, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrNoteNotFound
		}
		return nil, fmt.Errorf("get note by id: %w", err)
	}

	inUTC(&note.CreatedAt, &note.UpdatedAt)
	return &note, nil
}

// FindByTarget matches on every target field that is set; unset fields are
// not constrained. The oldest match wins.
func (r *NoteRepositoryImpl) FindByTarget(ctx context.Context, userID uuid.UUID, target entities.NoteTarget) (*entities.Note, error) {
	builder := psql.Select(noteColumns).
		From("notes").
		Where(squirrel.Expr("user_id = ?", userID))

	if target.TaskID != nil {
		builder = builder.Where(squirrel.Expr("task_id = ?", *target.TaskID))
	}
	if target.ProjectID != nil {
		builder = builder.Where(squirrel.Expr("project_id = ?", *target.ProjectID))
	}
	if target.EventID != nil {
		builder = builder.Where(squirrel.Expr("event_id = ?", *target.EventID))
	}

	query, args, err := builder.OrderBy("created_at ASC").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build note target query: %w", err)
	}

	var note entities.Note
	if err := r.db.GetContext(ctx, &note, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note by target: %w", err)
	}

	inUTC(&note.CreatedAt, &note.UpdatedAt)
	return &note, nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entities.Note) error {
	query := `
		UPDATE notes
		SET task_id = $3, project_id = $4, event_id = $5, title = $6, description = $7,
			text_content = $8, code_blocks = $9, drawing_data = $10, type = $11,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		note.ID, note.UserID, note.TaskID, note.ProjectID, note.EventID,
		note.Title, note.Description, note.TextContent, note.CodeBlocks,
		note.DrawingData, note.Type,
	).Scan(&note.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ErrNoteNotFound
		}
		return fmt.Errorf("update note: %w", err)
	}

	inUTC(&note.UpdatedAt)
	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}

	return deleted(result)
}

func (r *NoteRepositoryImpl) DeleteByTask(ctx context.Context, userID, taskID uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE task_id = $1 AND user_id = $2`, taskID, userID)
	if err != nil {
		return false, fmt.Errorf("delete note by task: %w", err)
	}

	return deleted(result)
}

func (r *NoteRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 ORDER BY updated_at DESC`

	notes := []*entities.Note{}
	if err := r.db.SelectContext(ctx, &notes, query, userID); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	for _, note := range notes {
		inUTC(&note.CreatedAt, &note.UpdatedAt)
	}

	return notes, nil
}

// TaskIDsWithNotes returns the members of taskIDs that have at least one note,
// in the order they were given.
func (r *NoteRepositoryImpl) TaskIDsWithNotes(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(taskIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	ids := make([]string, len(taskIDs))
	for i, id := range taskIDs {
		ids[i] = id.String()
	}

	query, args, err := psql.Select("DISTINCT task_id").
		From("notes").
		Where(squirrel.Expr("user_id = ?", userID)).
		Where(squirrel.Eq{"task_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build task note query: %w", err)
	}

	var found []uuid.UUID
	if err := r.db.SelectContext(ctx, &found, query, args...); err != nil {
		return nil, fmt.Errorf("select task ids with notes: %w", err)
	}

	present := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}

	result := []uuid.UUID{}
	for _, id := range taskIDs {
		if _, ok := present[id]; ok {
			result = append(result, id)
			delete(present, id)
		}
	}

	return result, nil
}

func deleted(result sql.Result) (bool, error) {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}
