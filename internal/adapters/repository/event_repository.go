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

// EventRepositoryImpl implements the EventRepository interface
type EventRepositoryImpl struct {
	db *sqlx.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sqlx.DB) ports.EventRepository {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *entities.Event) error {
	query := `
		INSERT INTO events (id, title, description, date, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		event.ID, event.Title, event.Description, event.Date, event.UserID,
	).Scan(&event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	inUTC(&event.Date, &event.CreatedAt, &event.UpdatedAt)
	return nil
}

func (r *EventRepositoryImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Event, error) {
	query := `
		SELECT id, title, description, date, user_id, created_at, updated_at
		FROM events
		WHERE id = $1 AND user_id = $2`

	var event entities.Event
	err := r.db.GetContext(ctx, &event, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}

	inUTC(&event.Date, &event.CreatedAt, &event.UpdatedAt)
	return &event, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, event *entities.Event) error {
	query := `
		UPDATE events
		SET title = $3, description = $4, date = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		event.ID, event.UserID, event.Title, event.Description, event.Date,
	).Scan(&event.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ErrEventNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}

	inUTC(&event.Date, &event.UpdatedAt)
	return nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return rowsAffectedOrNotFound(result, entities.ErrEventNotFound)
}

func (r *EventRepositoryImpl) List(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error) {
	query := `
		SELECT id, title, description, date, user_id, created_at, updated_at
		FROM events
		WHERE user_id = $1
		ORDER BY date ASC`

	events := []*entities.Event{}
	if err := r.db.SelectContext(ctx, &events, query, userID); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	for _, event := range events {
		inUTC(&event.Date, &event.CreatedAt, &event.UpdatedAt)
	}

	return events, nil
}
