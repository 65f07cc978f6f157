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

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var taskColumns = []string{
	"t.id", "t.title", "t.status", "t.priority", "t.deadline",
	"t.project_id", "t.user_id", "t.created_at", "t.updated_at",
	"p.name AS project_name",
	"p.description AS project_description",
	"p.created_at AS project_created_at",
	"p.updated_at AS project_updated_at",
}

// taskRow is a task joined with the project it references, if that project
// still exists and belongs to the same user.
type taskRow struct {
	entities.Task
	ProjectName        sql.NullString `db:"project_name"`
	ProjectDescription sql.NullString `db:"project_description"`
	ProjectCreatedAt   sql.NullTime   `db:"project_created_at"`
	ProjectUpdatedAt   sql.NullTime   `db:"project_updated_at"`
}

func (row *taskRow) toTask() *entities.Task {
	task := row.Task
	inUTC(&task.Deadline, &task.CreatedAt, &task.UpdatedAt)
	if row.ProjectID != nil && row.ProjectName.Valid {
		task.Project = &entities.Project{
			ID:          *row.ProjectID,
			Name:        row.ProjectName.String,
			Description: row.ProjectDescription.String,
			UserID:      row.UserID,
			CreatedAt:   row.ProjectCreatedAt.Time.UTC(),
			UpdatedAt:   row.ProjectUpdatedAt.Time.UTC(),
		}
	}
	return &task
}

// TaskRepositoryImpl implements the TaskRepository interface
type TaskRepositoryImpl struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) ports.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (id, title, status, priority, deadline, project_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.Title, task.Status, task.Priority, task.Deadline,
		task.ProjectID, task.UserID,
	).Scan(&task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	inUTC(&task.Deadline, &task.CreatedAt, &task.UpdatedAt)
	return nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Task, error) {
	query, args, err := r.selectTasks().
		Where(squirrel.Expr("t.id = ?", id)).
		Where(squirrel.Expr("t.user_id = ?", userID)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build task query: %w", err)
	}

	var row taskRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}

	return row.toTask(), nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *entities.Task) error {
	query := `
		UPDATE tasks
		SET title = $3, status = $4, priority = $5, deadline = $6, project_id = $7,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Status, task.Priority,
		task.Deadline, task.ProjectID,
	).Scan(&task.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ErrTaskNotFound
		}
		return fmt.Errorf("update task: %w", err)
	}

	inUTC(&task.Deadline, &task.UpdatedAt)
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	return rowsAffectedOrNotFound(result, entities.ErrTaskNotFound)
}

func (r *TaskRepositoryImpl) List(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, error) {
	builder := r.selectTasks().
		Where(taskConditions(filter)).
		OrderBy("t.deadline ASC", "t.created_at DESC")

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build task list query: %w", err)
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]*entities.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, rows[i].toTask())
	}

	return tasks, nil
}

func (r *TaskRepositoryImpl) Count(ctx context.Context, filter ports.TaskFilter) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("tasks t").
		Where(taskConditions(filter)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build task count query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}

	return count, nil
}

func (r *TaskRepositoryImpl) selectTasks() squirrel.SelectBuilder {
	return psql.Select(taskColumns...).
		From("tasks t").
		LeftJoin("projects p ON p.id = t.project_id AND p.user_id = t.user_id")
}

// taskConditions always starts with the owner so no filter combination can
// widen the result beyond one user's rows.
func taskConditions(filter ports.TaskFilter) squirrel.And {
	conds := squirrel.And{squirrel.Expr("t.user_id = ?", filter.UserID)}

	if filter.ProjectID != nil {
		conds = append(conds, squirrel.Expr("t.project_id = ?", *filter.ProjectID))
	}
	if filter.Status != nil {
		conds = append(conds, squirrel.Eq{"t.status": string(*filter.Status)})
	}
	if filter.Priority != nil {
		conds = append(conds, squirrel.Eq{"t.priority": string(*filter.Priority)})
	}
	if filter.DeadlineStart != nil {
		conds = append(conds, squirrel.GtOrEq{"t.deadline": *filter.DeadlineStart})
	}
	if filter.DeadlineEnd != nil {
		conds = append(conds, squirrel.LtOrEq{"t.deadline": *filter.DeadlineEnd})
	}

	return conds
}
