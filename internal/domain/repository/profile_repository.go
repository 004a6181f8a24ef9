package repository

import (
	"context"

	"github.com/oksasatya/growthpoints/internal/domain/entity"
)

// ProfileRepository defines profile lookups and creation.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	// Ensure creates the profile with zero points if it does not exist yet.
	Ensure(ctx context.Context, id, email string) (*entity.Profile, error)
}

// LedgerRepository credits points atomically at the storage layer.
type LedgerRepository interface {
	Credit(ctx context.Context, userID, taskID string, amount int64) error
}
