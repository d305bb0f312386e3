package httpapi

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const minPasswordLength = 4

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *registerRequest) Validate() error {
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("%w: invalid email", common.ErrValidation)
	}
	if len(r.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", common.ErrValidation, minPasswordLength)
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *loginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}
	return nil
}

type createTaskRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Completed   bool      `json:"completed"`
}

func (r *createTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if r.DueDate.IsZero() {
		return fmt.Errorf("%w: due_date is required", common.ErrValidation)
	}
	return nil
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Completed   *bool      `json:"completed"`
}

func (r *updateTaskRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}
	if r.DueDate != nil && r.DueDate.IsZero() {
		return fmt.Errorf("%w: due_date must not be empty", common.ErrValidation)
	}
	return nil
}

func (r *updateTaskRequest) Patch() *models.TaskPatch {
	return &models.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Completed:   r.Completed,
	}
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

type loginResponse struct {
	userResponse
	AccessToken string `json:"access_token"`
}

type taskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDate     time.Time         `json:"due_date"`
	Completed   bool              `json:"completed"`
	Status      models.TaskStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

func newTaskResponse(t *models.Task, now time.Time) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		Status:      t.Status(now),
		CreatedAt:   t.CreatedAt,
	}
}

type deleteResponse struct {
	Success bool `json:"success"`
}

type shareResponse struct {
	ShareText string `json:"shareText"`
}

type errorResponse struct {
	Error string `json:"error"`
}
