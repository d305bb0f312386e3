package models

import "time"

type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	DueDate     time.Time
	Completed   bool
	CreatedAt   time.Time
}

// TaskStatus is a derived display state. It is computed at read time and
// never persisted; a task does not transition anywhere when its due date
// passes.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusDueSoon   TaskStatus = "due-soon"
	TaskStatusOverdue   TaskStatus = "overdue"
	TaskStatusCompleted TaskStatus = "completed"
)

// DueSoonWindow is how far ahead of the due date a pending task starts
// reporting TaskStatusDueSoon.
const DueSoonWindow = 24 * time.Hour

// Status derives the display status of the task at the given moment.
func (t *Task) Status(now time.Time) TaskStatus {
	if t.Completed {
		return TaskStatusCompleted
	}
	if t.DueDate.Before(now) {
		return TaskStatusOverdue
	}
	if !t.DueDate.After(now.Add(DueSoonWindow)) {
		return TaskStatusDueSoon
	}
	return TaskStatusPending
}

// TaskPatch describes a partial update. Nil fields keep their prior values.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
}

// IsZero reports whether the patch carries no fields at all.
func (p *TaskPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil && p.Completed == nil
}

// Apply copies the set fields of the patch onto the task.
func (p *TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}
