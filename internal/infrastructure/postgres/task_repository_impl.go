package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/growthpoints/internal/domain/entity"
	"github.com/oksasatya/growthpoints/internal/domain/repository"
)

type TaskRepository struct {
	db DBTX
}

func NewTaskRepository(db DBTX) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	t := &entity.Task{}
	var status string

	row := r.db.QueryRow(ctx, `
		SELECT id::text, assigned_to::text, status, points, title, created_at
		FROM tasks
		WHERE id = $1
	`, id)

	if err := row.Scan(&t.ID, &t.AssignedTo, &status, &t.Points, &t.Title, &t.CreatedAt); err != nil {
		// a malformed uuid can never match a row
		if errors.Is(err, pgx.ErrNoRows) || pgCode(err) == codeInvalidTextRepr {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	t.Status = entity.TaskStatus(status)

	return t, nil
}

func (r *TaskRepository) SetStatus(ctx context.Context, id string, from, to entity.TaskStatus) error {
	res, err := r.db.Exec(ctx, `
		UPDATE tasks
		SET status = $1
		WHERE id = $2 AND status = $3
	`, string(to), id, string(from))
	if err != nil {
		return fmt.Errorf("set task status: %w", err)
	}

	if res.RowsAffected() == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, userID string) ([]entity.Task, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id::text, assigned_to::text, status, points, title, created_at
		FROM tasks
		WHERE assigned_to = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		if pgCode(err) == codeInvalidTextRepr {
			return []entity.Task{}, nil
		}
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := make([]entity.Task, 0)
	for rows.Next() {
		var t entity.Task
		var status string
		if err := rows.Scan(&t.ID, &t.AssignedTo, &status, &t.Points, &t.Title, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Status = entity.TaskStatus(status)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		if pgCode(err) == codeInvalidTextRepr {
			return []entity.Task{}, nil
		}
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return out, nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
