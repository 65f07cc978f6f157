package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrNoteNotFound       = errors.New("Note not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("Not authenticated")
	ErrNoteLocatorMissing = errors.New("Either id or taskId must be provided")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidStatus      = fmt.Errorf("%w: invalid status", ErrInvalidInput)
	ErrInvalidPriority    = fmt.Errorf("%w: invalid priority", ErrInvalidInput)
	ErrInvalidNoteType    = fmt.Errorf("%w: invalid note type", ErrInvalidInput)
)

// IsNotFound reports whether err is one of the owner-scoped lookup misses.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrNoteNotFound)
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// IsValid checks if the task status is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid checks if the priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type NoteType string

const (
	NoteTypeText    NoteType = "text"
	NoteTypeCode    NoteType = "code"
	NoteTypeDrawing NoteType = "drawing"
)

func (t NoteType) IsValid() bool {
	switch t {
	case NoteTypeText, NoteTypeCode, NoteTypeDrawing:
		return true
	}
	return false
}

// User represents an account. Ownership of projects, tasks, events and
// notes lives on the owned rows, never on the user.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         *string   `json:"name,omitempty" db:"name"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Project groups tasks for one user
type Project struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Task is a unit of work with a deadline. ProjectID is a weak reference:
// it is neither checked for ownership nor cleared when the project goes away.
type Task struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Status    TaskStatus `json:"status" db:"status"`
	Priority  Priority   `json:"priority" db:"priority"`
	Deadline  time.Time  `json:"deadline" db:"deadline"`
	ProjectID *uuid.UUID `json:"projectId" db:"project_id"`
	UserID    uuid.UUID  `json:"userId" db:"user_id"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`

	// Project is populated on list reads when the referenced project still exists.
	Project *Project `json:"project,omitempty" db:"-"`
}

// IsOverdue returns true if the task deadline has passed and it is not done
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Status != TaskStatusDone && t.Deadline.Before(now)
}

type Event struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Date        time.Time `json:"date" db:"date"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CodeBlock is a snippet attached to a note
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// CodeBlocks is stored as a JSONB array.
type CodeBlocks []CodeBlock

// Value implements driver.Valuer
func (c CodeBlocks) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner
func (c *CodeBlocks) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*c = CodeBlocks{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan code blocks: unsupported type %T", src)
	}

	blocks := CodeBlocks{}
	if err := json.Unmarshal(data, &blocks); err != nil {
		return fmt.Errorf("scan code blocks: %w", err)
	}
	*c = blocks
	return nil
}

// NoteTarget identifies what a note is attached to. At most one field is
// expected to be set, but nothing enforces it.
type NoteTarget struct {
	TaskID    *uuid.UUID `json:"taskId,omitempty"`
	ProjectID *uuid.UUID `json:"projectId,omitempty"`
	EventID   *uuid.UUID `json:"eventId,omitempty"`
}

// IsEmpty returns true if the target points nowhere
func (t NoteTarget) IsEmpty() bool {
	return t.TaskID == nil && t.ProjectID == nil && t.EventID == nil
}

// Note is free-form content attached to a task, project or event
type Note struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"userId" db:"user_id"`
	TaskID      *uuid.UUID `json:"taskId" db:"task_id"`
	ProjectID   *uuid.UUID `json:"projectId" db:"project_id"`
	EventID     *uuid.UUID `json:"eventId" db:"event_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	TextContent string     `json:"textContent" db:"text_content"`
	CodeBlocks  CodeBlocks `json:"codeBlocks" db:"code_blocks"`
	DrawingData string     `json:"drawingData" db:"drawing_data"`
	Type        NoteType   `json:"type" db:"type"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// Target returns the association the note was stored under
func (n *Note) Target() NoteTarget {
	return NoteTarget{TaskID: n.TaskID, ProjectID: n.ProjectID, EventID: n.EventID}
}
