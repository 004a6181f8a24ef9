package entity

import "time"

// TaskStatus is the lifecycle state of a task.
// The only legal transition is TaskOpen -> TaskDone.
type TaskStatus string

const (
	TaskOpen TaskStatus = "open"
	TaskDone TaskStatus = "done"
)

// Task is a unit of work assigned to a single user that pays Points when claimed.
type Task struct {
	ID         string
	AssignedTo string
	Status     TaskStatus
	Points     int64
	Title      string
	CreatedAt  time.Time
}

// IsOpen reports whether the task can still be claimed.
func (t *Task) IsOpen() bool { return t.Status == TaskOpen }

// OwnedBy reports whether userID is the assignee.
func (t *Task) OwnedBy(userID string) bool { return t.AssignedTo == userID }
