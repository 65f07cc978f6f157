package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

// ProjectService handles project-related operations
type ProjectService struct {
	projects ports.ProjectRepository
	logger   *logger.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projects ports.ProjectRepository, logger *logger.Logger) *ProjectService {
	return &ProjectService{
		projects: projects,
		logger:   logger.WithComponent("projects"),
	}
}

// Create creates a project owned by userID
func (s *ProjectService) Create(ctx context.Context, userID uuid.UUID, req ports.CreateProjectRequest) (*entities.Project, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	project := &entities.Project{
		Name:        req.Name,
		Description: req.Description,
		UserID:      userID,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.LogUserAction(userID.String(), "project_created", map[string]interface{}{"project_id": project.ID.String()})
	return project, nil
}

// List returns every project the user owns, newest first
func (s *ProjectService) List(ctx context.Context, userID uuid.UUID) ([]*entities.Project, error) {
	return s.projects.List(ctx, userID)
}

func (s *ProjectService) Get(ctx context.Context, userID, id uuid.UUID) (*entities.Project, error) {
	return s.projects.GetByID(ctx, userID, id)
}

// Update applies the supplied fields to an owned project
func (s *ProjectService) Update(ctx context.Context, userID, id uuid.UUID, req ports.UpdateProjectRequest) (*entities.Project, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	apply(&project.Name, req.Name)
	apply(&project.Description, req.Description)

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes an owned project. Tasks that reference it are left as they are.
func (s *ProjectService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.projects.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.LogUserAction(userID.String(), "project_deleted", map[string]interface{}{"project_id": id.String()})
	return nil
}
