package services

import "errors"

// One sentinel per failure class. ErrInvalidCredentials covers both the
// unknown-email and wrong-password cases, and ErrTaskNotFound covers both
// missing and foreign-owned tasks, so callers cannot tell the causes apart.
var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownUser        = errors.New("unknown user")
	ErrEmptyTitle         = errors.New("title must not be empty")
	ErrTaskNotFound       = errors.New("task not found")
)
