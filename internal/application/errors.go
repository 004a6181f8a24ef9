package application

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the transport layer can map it to a status.
type Kind string

const (
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
	KindInvalidToken Kind = "invalid_token"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindInternal     Kind = "internal"
	KindUnconfigured Kind = "unconfigured"
	KindUpstream     Kind = "upstream"
)

// User-facing messages.
const (
	MsgUnauthorized         = "Unauthorized"
	MsgInvalidToken         = "Invalid token"
	MsgMissingTaskID        = "Missing taskId"
	MsgTaskNotOpen          = "Task not open"
	MsgNotYourTask          = "Not your task"
	MsgTaskNotFound         = "Task not found"
	MsgFailedUpdateTask     = "Failed to update task"
	MsgFailedCreditPoints   = "Failed to credit points"
	MsgServerError          = "Server error"
	MsgIdentityUnconfigured = "Identity service not configured"
	MsgNoMessage            = "No message"
	MsgCompletionNoKey      = "OpenAI key not set"
	MsgProfileNotFound      = "Profile not found"
)

// Error is the structured failure every service operation returns.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the user-facing message of err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return MsgServerError
}
