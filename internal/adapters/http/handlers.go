package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/ports"
)

// Context keys set by the auth middleware
const (
	UserIDKey = "user"
	ClaimsKey = "claims"
)

// UserIDFromContext returns the authenticated user's ID, or uuid.Nil
func UserIDFromContext(c echo.Context) uuid.UUID {
	userID, ok := c.Get(UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

// ClaimsFromContext returns the verified token claims, if any
func ClaimsFromContext(c echo.Context) *ports.Claims {
	claims, _ := c.Get(ClaimsKey).(*ports.Claims)
	return claims
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID")
	}
	return id, nil
}

// bind decodes and validates the request body
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// httpError translates domain errors into HTTP errors
func httpError(err error) *echo.HTTPError {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he
	case entities.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, entities.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, entities.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, entities.ErrNotAuthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, entities.ErrInvalidInput), errors.Is(err, entities.ErrNoteLocatorMissing):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
	}
}

// Request/Response types
type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// TaskListResponse is one page of tasks
type TaskListResponse struct {
	Tasks       []*entities.Task `json:"tasks"`
	Total       int              `json:"total"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	Limit       int              `json:"limit"`
}
