package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// shareTemplate embeds title and description verbatim. No escaping: special
// characters pass through unchanged, and an empty description produces an
// empty segment between the markers.
const shareTemplate = "Check out my task: \"%s\"\n\nDescription: %s\n\n#TaskManagement #Productivity"

// TaskService is the task store gateway. Every read/mutate/delete/share looks
// tasks up by (id, owner) so that someone else's task is indistinguishable
// from a missing one. Update enforces the same ownership check as delete and
// share; see DESIGN.md for the divergence from the original behavior.
type TaskService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService using repositories.
func NewTaskService(db dbx.DBTX, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// Create persists a new task for ownerID. The owner must exist
// (common.ErrOwnerNotFound otherwise); the title must be non-empty, which the
// transport boundary validates and this check merely backstops.
func (s *TaskService) Create(ctx context.Context, ownerID, title, description string, dueDate time.Time, completed bool) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.ErrValidation
	}

	userRepo := s.repomanager.Users(s.db)
	exists, err := userRepo.Exists(ctx, ownerID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if !exists {
		return nil, common.ErrOwnerNotFound
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Completed:   completed,
	}

	task, err = s.repomanager.Tasks(s.db).Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %v", err)
	}

	return task, nil
}

// List returns all tasks owned by ownerID, due date ascending with id as the
// tie-break. An owner with no tasks, or an unknown owner, yields an empty
// slice: absence of tasks is not an error.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	result, err := s.repomanager.Tasks(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

// Update applies the set fields of patch to the task. Unset fields keep prior
// values; an empty patch returns the task unchanged without touching the
// store. Missing or foreign tasks yield common.ErrTaskNotFound.
func (s *TaskService) Update(ctx context.Context, taskID, ownerID string, patch *models.TaskPatch) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	task, err := repo.GetByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrTaskNotFound
		}
		return nil, common.ErrorInternal
	}

	if patch.IsZero() {
		return task, nil
	}

	patch.Apply(task)

	task, err = repo.Update(ctx, task)
	if err != nil {
		// The row can vanish between the guarded read and the guarded
		// write; that is still "not found" to the caller.
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrTaskNotFound
		}
		return nil, common.ErrorInternal
	}

	return task, nil
}

// Delete permanently removes the task. Missing and foreign tasks produce the
// same common.ErrTaskNotFound, so repeating a delete is safe and existence
// cannot be probed across owners.
func (s *TaskService) Delete(ctx context.Context, taskID, ownerID string) error {
	err := s.repomanager.Tasks(s.db).Delete(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrTaskNotFound
		}
		return common.ErrorInternal
	}
	return nil
}

// Share renders the task as shareable text. Read-only; same merged ownership
// lookup as Delete.
func (s *TaskService) Share(ctx context.Context, taskID, ownerID string) (string, error) {
	task, err := s.repomanager.Tasks(s.db).GetByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrTaskNotFound
		}
		return "", common.ErrorInternal
	}

	return fmt.Sprintf(shareTemplate, task.Title, task.Description), nil
}
