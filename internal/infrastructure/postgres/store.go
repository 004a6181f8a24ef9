package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/growthpoints/internal/domain/repository"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner is a DBTX that can open transactions, typically *pgxpool.Pool.
type TxBeginner interface {
	DBTX
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// Store is the Postgres UnitOfWork.
type Store struct {
	db TxBeginner
}

func NewStore(db TxBeginner) *Store {
	return &Store{db: db}
}

func bind(db DBTX) repository.Repositories {
	return repository.Repositories{
		Tasks:    NewTaskRepository(db),
		Profiles: NewProfileRepository(db),
		Ledger:   NewLedgerRepository(db),
	}
}

func (s *Store) Repos() repository.Repositories {
	return bind(s.db)
}

// WithinTx runs fn inside a read-committed transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	// Rollback after a successful commit is a no-op returning pgx.ErrTxClosed.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, bind(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrCommit, err)
	}
	return nil
}

var _ repository.UnitOfWork = (*Store)(nil)

// Postgres error codes we translate into repository errors.
const (
	codeUniqueViolation = "23505"
	codeInvalidTextRepr = "22P02"
	codeNoDataFound     = "P0002"
	codeCheckViolation  = "23514"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
