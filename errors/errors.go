// Package errors provides error handling for girgen.
//
// This package re-exports github.com/cockroachdb/errors so loaders and the
// CLI get stack traces, wrapping and user-facing hints from one import:
//
//	if err := status.LoadFile(path); err != nil {
//	    return errors.Wrapf(err, "failed to load status file %s", path)
//	}
//
// Code generation never wraps sink write failures; those are returned to
// the caller as-is so they can be compared with errors.Is or ==.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
)

// User-facing messages and details
var (
	WithHint      = crdb.WithHint
	WithDetailf   = crdb.WithDetailf
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Is reports whether any error in err's chain matches target
var Is = crdb.Is

// Sentinel errors shared by the loaders.
var (
	// ErrNotFound indicates a named type, namespace or file does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates malformed input (snapshot, status file, config)
	ErrInvalidRequest = New("invalid request")

	// ErrCycle indicates the generation dependency graph is not a DAG
	ErrCycle = New("dependency cycle")
)

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRequest, Newf(format, args...).Error())
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}
