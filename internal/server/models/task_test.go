package models

import (
	"testing"
	"time"
)

func TestTaskStatus(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		completed bool
		due       time.Time
		want      TaskStatus
	}{
		{"completed wins over overdue", true, now.Add(-48 * time.Hour), TaskStatusCompleted},
		{"due date in the past", false, now.Add(-time.Minute), TaskStatusOverdue},
		{"due within 24h", false, now.Add(3 * time.Hour), TaskStatusDueSoon},
		{"due exactly in 24h", false, now.Add(24 * time.Hour), TaskStatusDueSoon},
		{"due after 24h", false, now.Add(24*time.Hour + time.Second), TaskStatusPending},
	}

	for _, tc := range cases {
		task := &Task{Completed: tc.completed, DueDate: tc.due}
		if got := task.Status(now); got != tc.want {
			t.Fatalf("%s: want %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestTaskPatch_Apply(t *testing.T) {
	due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	task := &Task{Title: "old", Description: "old desc", DueDate: due, Completed: false}

	title := "new"
	completed := true
	p := &TaskPatch{Title: &title, Completed: &completed}
	p.Apply(task)

	if task.Title != "new" || !task.Completed {
		t.Fatalf("patched fields not applied: %+v", task)
	}
	if task.Description != "old desc" || !task.DueDate.Equal(due) {
		t.Fatalf("unset fields must keep prior values: %+v", task)
	}
}

func TestTaskPatch_IsZero(t *testing.T) {
	if !(&TaskPatch{}).IsZero() {
		t.Fatalf("empty patch must be zero")
	}
	d := ""
	if (&TaskPatch{Description: &d}).IsZero() {
		t.Fatalf("patch with a set (even empty-string) field must not be zero")
	}
}
