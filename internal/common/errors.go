// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrEmptyInput = errors.New("the provided input is empty")
	ErrNoRecords  = errors.New("no WiFi networks found in the provided data")
	ErrUpstream   = errors.New("analysis service reported an error")

	// Storage errors.
	ErrNotFound  = errors.New("not found")
	ErrNoSession = errors.New("no analysis session stored")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsWarning reports whether err is an expected outcome that should be shown
// as a warning instead of failing the command.
func IsWarning(err error) bool {
	return errors.Is(err, ErrNoRecords)
}
