package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates Run was called while running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoSource indicates an application created without a source.
	ErrNoSource = errors.New("no data source")

	// ErrNothingSelected indicates an action that needs a selection.
	ErrNothingSelected = errors.New("nothing selected")

	// ErrNoMatch indicates a column jump whose text matches no header.
	ErrNoMatch = errors.New("no matching column")
)

// OperationError represents an error that occurred during a user action.
type OperationError struct {
	Op     string // Operation name (e.g., "export", "filter", "edit")
	Target string // Target of the operation (e.g., file path, column name)
	Err    error  // Underlying error
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InitError represents a failure to start a component.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
