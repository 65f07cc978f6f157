package graphql

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskify/core/internal/domain/entities"
)

// Views flatten entities into the maps graphql-go resolves fields from.
// IDs are strings and times are RFC 3339. Absent entities come back as an
// untyped nil so graphql-go renders null.

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func optionalID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return id.String()
}

func userView(u *entities.User) interface{} {
	if u == nil {
		return nil
	}
	view := map[string]interface{}{
		"id":        u.ID.String(),
		"email":     u.Email,
		"name":      nil,
		"createdAt": formatTime(u.CreatedAt),
		"updatedAt": formatTime(u.UpdatedAt),
	}
	if u.Name != nil {
		view["name"] = *u.Name
	}
	return view
}

func projectView(p *entities.Project) interface{} {
	if p == nil {
		return nil
	}
	return map[string]interface{}{
		"id":          p.ID.String(),
		"name":        p.Name,
		"description": p.Description,
		"userId":      p.UserID.String(),
		"createdAt":   formatTime(p.CreatedAt),
		"updatedAt":   formatTime(p.UpdatedAt),
	}
}

func projectViews(projects []*entities.Project) []interface{} {
	views := make([]interface{}, 0, len(projects))
	for _, p := range projects {
		views = append(views, projectView(p))
	}
	return views
}

func taskView(t *entities.Task) interface{} {
	if t == nil {
		return nil
	}
	view := map[string]interface{}{
		"id":        t.ID.String(),
		"title":     t.Title,
		"status":    string(t.Status),
		"priority":  string(t.Priority),
		"deadline":  formatTime(t.Deadline),
		"overdue":   t.IsOverdue(time.Now()),
		"projectId": optionalID(t.ProjectID),
		"project":   nil,
		"userId":    t.UserID.String(),
		"createdAt": formatTime(t.CreatedAt),
		"updatedAt": formatTime(t.UpdatedAt),
	}
	if t.Project != nil {
		view["project"] = projectView(t.Project)
	}
	return view
}

func taskViews(tasks []*entities.Task) []interface{} {
	views := make([]interface{}, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, taskView(t))
	}
	return views
}

func noteView(n *entities.Note) interface{} {
	if n == nil {
		return nil
	}
	blocks := make([]interface{}, 0, len(n.CodeBlocks))
	for _, b := range n.CodeBlocks {
		blocks = append(blocks, map[string]interface{}{"language": b.Language, "code": b.Code})
	}
	return map[string]interface{}{
		"id":          n.ID.String(),
		"userId":      n.UserID.String(),
		"taskId":      optionalID(n.TaskID),
		"projectId":   optionalID(n.ProjectID),
		"eventId":     optionalID(n.EventID),
		"title":       n.Title,
		"description": n.Description,
		"textContent": n.TextContent,
		"codeBlocks":  blocks,
		"drawingData": n.DrawingData,
		"type":        string(n.Type),
		"createdAt":   formatTime(n.CreatedAt),
		"updatedAt":   formatTime(n.UpdatedAt),
	}
}

func noteViews(notes []*entities.Note) []interface{} {
	views := make([]interface{}, 0, len(notes))
	for _, n := range notes {
		views = append(views, noteView(n))
	}
	return views
}
