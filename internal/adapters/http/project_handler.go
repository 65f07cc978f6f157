package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

// ProjectHandler handles project-related requests
type ProjectHandler struct {
	projectService ports.ProjectService
	logger         *logger.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService ports.ProjectService, logger *logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// CreateProject godoc
// @Summary Create a new project
// @Description Create a new project with the provided details
// @Tags projects
// @Accept json
// @Produce json
// @Param request body ports.CreateProjectRequest true "Project data"
// @Success 201 {object} entities.Project
// @Failure 400 {object} ErrorResponse
// @Security CookieAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	userID := UserIDFromContext(c)

	var req ports.CreateProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.Create(c.Request().Context(), userID, req)
	if err != nil {
		h.logger.Errorw("Create project failed", "error", err, "user_id", userID)
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, project)
}

// ListProjects godoc
// @Summary List projects
// @Description Every project owned by the current user, newest first
// @Tags projects
// @Produce json
// @Success 200 {array} entities.Project
// @Security CookieAuth
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.List(c.Request().Context(), UserIDFromContext(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} entities.Project
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security CookieAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c echo.Context) error {
	projectID, err := parseID(c)
	if err != nil {
		return err
	}

	project, err := h.projectService.Get(c.Request().Context(), UserIDFromContext(c), projectID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, project)
}

// UpdateProject godoc
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body ports.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} entities.Project
// @Failure 404 {object} ErrorResponse
// @Security CookieAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	projectID, err := parseID(c)
	if err != nil {
		return err
	}

	var req ports.UpdateProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.Update(c.Request().Context(), UserIDFromContext(c), projectID, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete a project
// @Description Tasks that reference the project are kept
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security CookieAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	projectID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.projectService.Delete(c.Request().Context(), UserIDFromContext(c), projectID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Project deleted"})
}
