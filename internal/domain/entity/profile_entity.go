package entity

import "time"

// Profile mirrors an identity-service user and carries the points balance.
// Points only ever change through the ledger's atomic increment.
type Profile struct {
	ID        string
	Email     string
	Points    int64
	CreatedAt time.Time
}

// PointCredit is one ledger row; at most one exists per task.
type PointCredit struct {
	TaskID    string
	UserID    string
	Amount    int64
	CreatedAt time.Time
}
