package repository

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrStatusConflict  = errors.New("status conflict")
	ErrAlreadyCredited = errors.New("task already credited")
	ErrNegativeAmount  = errors.New("negative credit amount")
)

// ErrCommit wraps a failure to commit an otherwise successful unit of work.
var ErrCommit = errors.New("commit failed")
