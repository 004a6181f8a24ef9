package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/growthpoints/internal/domain/entity"
	"github.com/oksasatya/growthpoints/internal/domain/repository"
)

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	p := &entity.Profile{}

	row := r.db.QueryRow(ctx, `
		SELECT id::text, email, points, created_at
		FROM profiles
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Email, &p.Points, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgCode(err) == codeInvalidTextRepr {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return p, nil
}

// Ensure inserts a zero-point profile or returns the existing one untouched.
func (r *ProfileRepository) Ensure(ctx context.Context, id, email string) (*entity.Profile, error) {
	p := &entity.Profile{}

	row := r.db.QueryRow(ctx, `
		INSERT INTO profiles (id, email, points)
		VALUES ($1, $2, 0)
		ON CONFLICT (id) DO UPDATE SET email = profiles.email
		RETURNING id::text, email, points, created_at
	`, id, email)

	if err := row.Scan(&p.ID, &p.Email, &p.Points, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}

	return p, nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
