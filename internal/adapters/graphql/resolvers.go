package graphql

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

// Resolver backs every field of the schema with the application services
type Resolver struct {
	auth     ports.AuthService
	projects ports.ProjectService
	tasks    ports.TaskService
	notes    ports.NoteService
	logger   *logger.Logger
}

func NewResolver(auth ports.AuthService, projects ports.ProjectService, tasks ports.TaskService, notes ports.NoteService, logger *logger.Logger) *Resolver {
	return &Resolver{
		auth:     auth,
		projects: projects,
		tasks:    tasks,
		notes:    notes,
		logger:   logger.WithComponent("graphql"),
	}
}

// Queries

func (r *Resolver) me(p graphql.ResolveParams) (interface{}, error) {
	claims := ClaimsFromContext(p.Context)
	if claims == nil {
		return nil, nil
	}
	user, err := r.auth.Me(p.Context, claims.UserID)
	if entities.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return userView(user), nil
}

func (r *Resolver) listProjects(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	projects, err := r.projects.List(p.Context, claims.UserID)
	if err != nil {
		return nil, err
	}
	return projectViews(projects), nil
}

func (r *Resolver) project(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := requiredID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	project, err := r.projects.Get(p.Context, claims.UserID, id)
	return nullIfNotFound(projectView(project), err)
}

func (r *Resolver) listTasks(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}

	query := ports.TaskQuery{
		Page:  intArg(p.Args, "page"),
		Limit: intArg(p.Args, "limit"),
	}
	if filter, ok := p.Args["filter"].(map[string]interface{}); ok {
		if query.ProjectID, err = optionalUUID(filter, "projectId"); err != nil {
			return nil, err
		}
		if s := stringArg(filter, "status"); s != nil {
			status := entities.TaskStatus(*s)
			query.Status = &status
		}
		if s := stringArg(filter, "priority"); s != nil {
			priority := entities.Priority(*s)
			query.Priority = &priority
		}
		if query.DeadlineStart, err = optionalTime(filter, "deadlineStart"); err != nil {
			return nil, err
		}
		if query.DeadlineEnd, err = optionalTime(filter, "deadlineEnd"); err != nil {
			return nil, err
		}
	}

	page, err := r.tasks.List(p.Context, claims.UserID, query)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"tasks":       taskViews(page.Items),
		"total":       page.Total,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
		"limit":       page.Limit,
	}, nil
}

func (r *Resolver) task(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := requiredID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	task, err := r.tasks.Get(p.Context, claims.UserID, id)
	return nullIfNotFound(taskView(task), err)
}

func (r *Resolver) note(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := optionalUUID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	taskID, err := optionalUUID(p.Args, "taskId")
	if err != nil {
		return nil, err
	}
	note, err := r.notes.Find(p.Context, claims.UserID, id, taskID)
	if err != nil {
		return nil, err
	}
	return noteView(note), nil
}

func (r *Resolver) noteByID(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := requiredID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	note, err := r.notes.Get(p.Context, claims.UserID, id)
	if err != nil {
		return nil, err
	}
	return noteView(note), nil
}

func (r *Resolver) tasksWithNotes(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	raw, _ := p.Args["taskIds"].([]interface{})
	ids := make([]uuid.UUID, 0, len(raw))
	for _, v := range raw {
		s, _ := v.(string)
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid task id %q", entities.ErrInvalidInput, s)
		}
		ids = append(ids, id)
	}

	found, err := r.notes.TasksWithNotes(p.Context, claims.UserID, ids)
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, 0, len(found))
	for _, id := range found {
		out = append(out, id.String())
	}
	return out, nil
}

func (r *Resolver) myNotes(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	notes, err := r.notes.ListMine(p.Context, claims.UserID)
	if err != nil {
		return nil, err
	}
	return noteViews(notes), nil
}

// Mutations

func (r *Resolver) signup(p graphql.ResolveParams) (interface{}, error) {
	req := ports.SignupRequest{
		Email:    stringValue(p.Args, "email"),
		Password: stringValue(p.Args, "password"),
		Name:     stringArg(p.Args, "name"),
	}
	result, err := r.auth.Signup(p.Context, req)
	if err != nil {
		return nil, err
	}
	setCookie(p.Context, r.auth.SessionCookie(result.Token))
	return authPayload(result), nil
}

func (r *Resolver) login(p graphql.ResolveParams) (interface{}, error) {
	req := ports.LoginRequest{
		Email:    stringValue(p.Args, "email"),
		Password: stringValue(p.Args, "password"),
	}
	result, err := r.auth.Login(p.Context, req)
	if err != nil {
		return nil, err
	}
	setCookie(p.Context, r.auth.SessionCookie(result.Token))
	return authPayload(result), nil
}

func (r *Resolver) logout(p graphql.ResolveParams) (interface{}, error) {
	setCookie(p.Context, r.auth.ClearSessionCookie())
	return true, nil
}

func (r *Resolver) createProject(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	req := ports.CreateProjectRequest{
		Name:        stringValue(p.Args, "name"),
		Description: stringValue(p.Args, "description"),
	}
	project, err := r.projects.Create(p.Context, claims.UserID, req)
	if err != nil {
		return nil, err
	}
	return projectView(project), nil
}

func (r *Resolver) updateProject(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := requiredID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	req := ports.UpdateProjectRequest{
		Name:        stringArg(p.Args, "name"),
		Description: stringArg(p.Args, "description"),
	}
	project, err := r.projects.Update(p.Context, claims.UserID, id, req)
	return nullIfNotFound(projectView(project), err)
}

func (r *Resolver) deleteProject(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := requiredID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return deleted(r.projects.Delete(p.Context, claims.UserID, id))
}

func (r *Resolver) createTask(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	req := ports.CreateTaskRequest{
		Title:    stringValue(p.Args, "title"),
		Status:   entities.TaskStatus(stringValue(p.Args, "status")),
		Priority: entities.Priority(stringValue(p.Args, "priority")),
	}
	if req.Deadline, err = optionalTimestamp(p.Args, "deadline"); err != nil {
		return nil, err
	}
	if req.ProjectID, err = optionalUUID(p.Args, "projectId"); err != nil {
		return nil, err
	}

	task, err := r.tasks.Create(p.Context, claims.UserID, req)
	if err != nil {
		return nil, err
	}
	return taskView(task), nil
}

func (r *Resolver) updateTask(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := requiredID(p.Args, "id")
	if err != nil {
		return nil, err
	}

	req := ports.UpdateTaskRequest{Title: stringArg(p.Args, "title")}
	if s := stringArg(p.Args, "status"); s != nil {
		status := entities.TaskStatus(*s)
		req.Status = &status
	}
	if s := stringArg(p.Args, "priority"); s != nil {
		priority := entities.Priority(*s)
		req.Priority = &priority
	}
	if req.Deadline, err = optionalTimestamp(p.Args, "deadline"); err != nil {
		return nil, err
	}
	// An empty projectId detaches the task
	if s := stringArg(p.Args, "projectId"); s != nil && *s == "" {
		req.ClearProject = true
	} else if req.ProjectID, err = optionalUUID(p.Args, "projectId"); err != nil {
		return nil, err
	}

	task, err := r.tasks.Update(p.Context, claims.UserID, id, req)
	return nullIfNotFound(taskView(task), err)
}

func (r *Resolver) deleteTask(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := requiredID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return deleted(r.tasks.Delete(p.Context, claims.UserID, id))
}

func (r *Resolver) upsertNote(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}

	var target entities.NoteTarget
	if target.TaskID, err = optionalUUID(p.Args, "taskId"); err != nil {
		return nil, err
	}
	if target.ProjectID, err = optionalUUID(p.Args, "projectId"); err != nil {
		return nil, err
	}
	if target.EventID, err = optionalUUID(p.Args, "eventId"); err != nil {
		return nil, err
	}
	noteID, err := optionalUUID(p.Args, "id")
	if err != nil {
		return nil, err
	}

	raw, _ := p.Args["input"].(map[string]interface{})
	note, err := r.notes.Upsert(p.Context, claims.UserID, target, noteInput(raw), noteID)
	if err != nil {
		return nil, err
	}
	return noteView(note), nil
}

func (r *Resolver) deleteNote(p graphql.ResolveParams) (interface{}, error) {
	claims, err := requireClaims(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := optionalUUID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	taskID, err := optionalUUID(p.Args, "taskId")
	if err != nil {
		return nil, err
	}

	switch {
	case id != nil:
		return r.notes.Delete(p.Context, claims.UserID, *id)
	case taskID != nil:
		return r.notes.DeleteByTask(p.Context, claims.UserID, *taskID)
	default:
		return nil, entities.ErrNoteLocatorMissing
	}
}

// Helpers

func authPayload(result *ports.AuthResult) map[string]interface{} {
	return map[string]interface{}{
		"user":  userView(result.User),
		"token": result.Token,
	}
}

func nullIfNotFound(view interface{}, err error) (interface{}, error) {
	if entities.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return view, nil
}

func deleted(err error) (interface{}, error) {
	if entities.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return nil, err
	}
	return true, nil
}

func noteInput(raw map[string]interface{}) ports.NoteInput {
	input := ports.NoteInput{
		Title:       stringArg(raw, "title"),
		Description: stringArg(raw, "description"),
		TextContent: stringArg(raw, "textContent"),
		DrawingData: stringArg(raw, "drawingData"),
	}
	if s := stringArg(raw, "type"); s != nil {
		kind := entities.NoteType(*s)
		input.Type = &kind
	}
	if list, ok := raw["codeBlocks"].([]interface{}); ok {
		blocks := make([]entities.CodeBlock, 0, len(list))
		for _, item := range list {
			m, _ := item.(map[string]interface{})
			blocks = append(blocks, entities.CodeBlock{
				Language: stringValue(m, "language"),
				Code:     stringValue(m, "code"),
			})
		}
		input.CodeBlocks = &blocks
	}
	return input
}

func stringArg(args map[string]interface{}, key string) *string {
	if s, ok := args[key].(string); ok {
		return &s
	}
	return nil
}

func stringValue(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func intArg(args map[string]interface{}, key string) int {
	n, _ := args[key].(int)
	return n
}

func requiredID(args map[string]interface{}, key string) (uuid.UUID, error) {
	id, err := optionalUUID(args, key)
	if err != nil {
		return uuid.Nil, err
	}
	if id == nil {
		return uuid.Nil, fmt.Errorf("%w: %s is required", entities.ErrInvalidInput, key)
	}
	return *id, nil
}

func optionalUUID(args map[string]interface{}, key string) (*uuid.UUID, error) {
	s := stringArg(args, key)
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", entities.ErrInvalidInput, key)
	}
	return &id, nil
}

func optionalTime(args map[string]interface{}, key string) (*time.Time, error) {
	s := stringArg(args, key)
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := entities.ParseTime(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", entities.ErrInvalidInput, key)
	}
	return &t, nil
}

func optionalTimestamp(args map[string]interface{}, key string) (*entities.Timestamp, error) {
	t, err := optionalTime(args, key)
	if err != nil || t == nil {
		return nil, err
	}
	return entities.NewTimestamp(*t), nil
}
