package repository

import (
	"context"

	"github.com/oksasatya/growthpoints/internal/domain/entity"
)

// TaskRepository reads and transitions task rows.
type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	// SetStatus moves a task from one status to another and fails with
	// ErrStatusConflict when the row is no longer in the from status.
	SetStatus(ctx context.Context, id string, from, to entity.TaskStatus) error
	ListByAssignee(ctx context.Context, userID string) ([]entity.Task, error)
}
