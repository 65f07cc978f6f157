package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/ports"
)

// ProjectRepositoryImpl implements the ProjectRepository interface
type ProjectRepositoryImpl struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sqlx.DB) ports.ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *entities.Project) error {
	query := `
		INSERT INTO projects (id, name, description, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		project.ID, project.Name, project.Description, project.UserID,
	).Scan(&project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	inUTC(&project.CreatedAt, &project.UpdatedAt)
	return nil
}

func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Project, error) {
	query := `
		SELECT id, name, description, user_id, created_at, updated_at
		FROM projects
		WHERE id = $1 AND user_id = $2`

	var project entities.Project
	err := r.db.GetContext(ctx, &project, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project by id: %w", err)
	}

	inUTC(&project.CreatedAt, &project.UpdatedAt)
	return &project, nil
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, project *entities.Project) error {
	query := `
		UPDATE projects
		SET name = $3, description = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		project.ID, project.UserID, project.Name, project.Description,
	).Scan(&project.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ErrProjectNotFound
		}
		return fmt.Errorf("update project: %w", err)
	}

	inUTC(&project.UpdatedAt)
	return nil
}

// Delete removes the project only. Tasks pointing at it are left in place.
func (r *ProjectRepositoryImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	return rowsAffectedOrNotFound(result, entities.ErrProjectNotFound)
}

func (r *ProjectRepositoryImpl) List(ctx context.Context, userID uuid.UUID) ([]*entities.Project, error) {
	query := `
		SELECT id, name, description, user_id, created_at, updated_at
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC`

	projects := []*entities.Project{}
	if err := r.db.SelectContext(ctx, &projects, query, userID); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	for _, project := range projects {
		inUTC(&project.CreatedAt, &project.UpdatedAt)
	}

	return projects, nil
}
