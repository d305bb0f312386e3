// Package httpapi exposes the user and task services over a JSON HTTP API.
// It owns the transport concerns only: request decoding and validation,
// access-token middleware, and mapping service errors to status codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// UserService is the credential-manager surface the transport needs.
type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	IssueAccessToken(user *models.User) (string, error)
}

// TaskService is the task-store surface the transport needs.
type TaskService interface {
	Create(ctx context.Context, ownerID, title, description string, dueDate time.Time, completed bool) (*models.Task, error)
	List(ctx context.Context, ownerID string) ([]*models.Task, error)
	Update(ctx context.Context, taskID, ownerID string, patch *models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, taskID, ownerID string) error
	Share(ctx context.Context, taskID, ownerID string) (string, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	users     UserService
	tasks     TaskService
	jwtSecret []byte
	now       func() time.Time
}

func NewServer(address string, l logging.Logger, us UserService, ts TaskService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
		now:       time.Now,
	}
}

// routes builds the echo instance with all handlers attached. Split out from
// Run so tests can drive the full router without a listener.
func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.POST("/api/register", s.register)
	e.POST("/api/login", s.login)

	g := e.Group("/api/tasks", s.accessTokenMiddleware)
	g.POST("", s.createTask)
	g.GET("", s.listTasks)
	g.PATCH("/:id", s.updateTask)
	g.DELETE("/:id", s.deleteTask)
	g.GET("/:id/share", s.shareTask)

	return e
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	e := s.routes()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
