package postgres

import (
	"context"
	"fmt"

	"github.com/oksasatya/growthpoints/internal/domain/repository"
)

// LedgerRepository credits points through the increment_points procedure, which
// records the credit row and bumps profiles.points in one statement.
type LedgerRepository struct {
	db DBTX
}

func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) Credit(ctx context.Context, userID, taskID string, amount int64) error {
	if amount < 0 {
		return repository.ErrNegativeAmount
	}

	_, err := r.db.Exec(ctx, `SELECT increment_points($1, $2, $3)`, userID, amount, taskID)
	if err != nil {
		switch pgCode(err) {
		case codeUniqueViolation:
			return repository.ErrAlreadyCredited
		case codeNoDataFound:
			return repository.ErrNotFound
		case codeCheckViolation:
			return repository.ErrNegativeAmount
		}
		return fmt.Errorf("credit points: %w", err)
	}

	return nil
}

var _ repository.LedgerRepository = (*LedgerRepository)(nil)
