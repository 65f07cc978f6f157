package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask godoc
// @Summary Create a task
// @Description Status defaults to todo and priority to medium
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body ports.CreateTaskRequest true "Task data"
// @Success 201 {object} entities.Task
// @Failure 400 {object} ErrorResponse
// @Security CookieAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID := UserIDFromContext(c)

	var req ports.CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.Create(c.Request().Context(), userID, req)
	if err != nil {
		h.logger.Errorw("Create task failed", "error", err, "user_id", userID)
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

// ListTasks godoc
// @Summary List tasks
// @Description One page of the current user's tasks, soonest deadline first
// @Tags tasks
// @Produce json
// @Param projectId query string false "Project ID"
// @Param status query string false "todo, in-progress or done"
// @Param priority query string false "low, medium or high"
// @Param deadlineStart query string false "Earliest deadline (RFC 3339 or YYYY-MM-DD)"
// @Param deadlineEnd query string false "Latest deadline (RFC 3339 or YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size, at most 100" default(10)
// @Success 200 {object} TaskListResponse
// @Failure 400 {object} ErrorResponse
// @Security CookieAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	query, err := parseTaskQuery(c)
	if err != nil {
		return err
	}

	page, err := h.taskService.List(c.Request().Context(), UserIDFromContext(c), query)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, TaskListResponse{
		Tasks:       page.Items,
		Total:       page.Total,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Limit:       page.Limit,
	})
}

// GetTask godoc
// @Summary Get task by ID
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} entities.Task
// @Failure 404 {object} ErrorResponse
// @Security CookieAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	taskID, err := parseID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Get(c.Request().Context(), UserIDFromContext(c), taskID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// UpdateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body ports.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} entities.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security CookieAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	taskID, err := parseID(c)
	if err != nil {
		return err
	}

	var req ports.UpdateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.Update(c.Request().Context(), UserIDFromContext(c), taskID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security CookieAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	taskID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), UserIDFromContext(c), taskID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted"})
}

func parseTaskQuery(c echo.Context) (ports.TaskQuery, error) {
	var query ports.TaskQuery

	if v := c.QueryParam("projectId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return query, echo.NewHTTPError(http.StatusBadRequest, "Invalid projectId parameter")
		}
		query.ProjectID = &id
	}

	if v := c.QueryParam("status"); v != "" {
		status := entities.TaskStatus(v)
		if !status.IsValid() {
			return query, echo.NewHTTPError(http.StatusBadRequest, "Invalid status parameter")
		}
		query.Status = &status
	}

	if v := c.QueryParam("priority"); v != "" {
		priority := entities.Priority(v)
		if !priority.IsValid() {
			return query, echo.NewHTTPError(http.StatusBadRequest, "Invalid priority parameter")
		}
		query.Priority = &priority
	}

	if v := c.QueryParam("deadlineStart"); v != "" {
		t, err := entities.ParseTime(v)
		if err != nil {
			return query, echo.NewHTTPError(http.StatusBadRequest, "Invalid deadlineStart parameter")
		}
		query.DeadlineStart = &t
	}

	if v := c.QueryParam("deadlineEnd"); v != "" {
		t, err := entities.ParseTime(v)
		if err != nil {
			return query, echo.NewHTTPError(http.StatusBadRequest, "Invalid deadlineEnd parameter")
		}
		query.DeadlineEnd = &t
	}

	if v := c.QueryParam("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return query, echo.NewHTTPError(http.StatusBadRequest, "Invalid page parameter")
		}
		query.Page = page
	}

	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return query, echo.NewHTTPError(http.StatusBadRequest, "Invalid limit parameter")
		}
		query.Limit = limit
	}

	return query, nil
}
