package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return s.writeError(c, err)
	}

	user, err := s.users.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, newUserResponse(user))
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return s.writeError(c, err)
	}

	user, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	token, err := s.users.IssueAccessToken(user)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{userResponse: newUserResponse(user), AccessToken: token})
}

func (s *Server) createTask(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return s.writeError(c, err)
	}

	task, err := s.tasks.Create(c.Request().Context(), ownerID(c), req.Title, req.Description, req.DueDate, req.Completed)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, newTaskResponse(task, s.now()))
}

func (s *Server) listTasks(c echo.Context) error {
	tasks, err := s.tasks.List(c.Request().Context(), ownerID(c))
	if err != nil {
		return s.writeError(c, err)
	}

	now := s.now()
	resp := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, newTaskResponse(t, now))
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) updateTask(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return s.writeError(c, err)
	}

	task, err := s.tasks.Update(c.Request().Context(), c.Param("id"), ownerID(c), req.Patch())
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, newTaskResponse(task, s.now()))
}

func (s *Server) deleteTask(c echo.Context) error {
	if err := s.tasks.Delete(c.Request().Context(), c.Param("id"), ownerID(c)); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, deleteResponse{Success: true})
}

func (s *Server) shareTask(c echo.Context) error {
	text, err := s.tasks.Share(c.Request().Context(), c.Param("id"), ownerID(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, shareResponse{ShareText: text})
}

// writeError converts a service error into an HTTP response. Unexpected errors
// are logged server-side and answered with a generic message so internals do
// not leak to clients.
func (s *Server) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrInvalidCredentials), errors.Is(err, common.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrDuplicateEmail):
		return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrOwnerNotFound), errors.Is(err, common.ErrTaskNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		s.logger.Error(c.Request().Context(), "request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
