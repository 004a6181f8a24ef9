package repository

import "context"

// Repositories groups the accessors bound to one connection or transaction.
type Repositories struct {
	Tasks    TaskRepository
	Profiles ProfileRepository
	Ledger   LedgerRepository
}

// UnitOfWork hands out repositories either directly or bound to a single
// transaction. WithinTx commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Repos() Repositories
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
