package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	tasksrepo "github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	usersrepo "github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// memUsersRepo is an in-memory users.Repository with the same contract as the
// Postgres one: exact (case-sensitive) email matching and ErrDuplicateEmail
// on conflicting inserts.
type memUsersRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User

	createErr error
	getErr    error
	existsErr error
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{byEmail: make(map[string]*models.User)}
}

func (f *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrDuplicateEmail
	}
	stored := *u
	stored.CreatedAt = time.Now()
	f.byEmail[u.Email] = &stored
	out := stored
	return &out, nil
}

func (f *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (f *memUsersRepo) Exists(ctx context.Context, id string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// memTasksRepo is an in-memory tasks.Repository mirroring the Postgres
// contract: owner-guarded lookups and due_date/id ordering.
type memTasksRepo struct {
	mu    sync.Mutex
	tasks map[string]*models.Task

	updateCalls int

	createErr error
	listErr   error
	getErr    error
	updateErr error
	deleteErr error
}

func newMemTasksRepo() *memTasksRepo {
	return &memTasksRepo{tasks: make(map[string]*models.Task)}
}

func (f *memTasksRepo) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *t
	stored.CreatedAt = time.Now()
	f.tasks[t.ID] = &stored
	out := stored
	return &out, nil
}

func (f *memTasksRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*models.Task
	for _, t := range f.tasks {
		if t.OwnerID == ownerID {
			out := *t
			result = append(result, &out)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].DueDate.Equal(result[j].DueDate) {
			return result[i].DueDate.Before(result[j].DueDate)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (f *memTasksRepo) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Task, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	out := *t
	return &out, nil
}

func (f *memTasksRepo) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	t, ok := f.tasks[task.ID]
	if !ok || t.OwnerID != task.OwnerID {
		return nil, common.ErrorNotFound
	}
	stored := *task
	stored.CreatedAt = t.CreatedAt
	f.tasks[task.ID] = &stored
	out := stored
	return &out, nil
}

func (f *memTasksRepo) Delete(ctx context.Context, id, ownerID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return common.ErrorNotFound
	}
	delete(f.tasks, id)
	return nil
}

type fakeRepoManager struct {
	u *memUsersRepo
	t *memTasksRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newMemUsersRepo(), t: newMemTasksRepo()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository      { return m.t }
