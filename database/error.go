// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so callers can directly check against an error kind when
// determining how to react to a failure.
type ErrorKind string

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

const (
	// ErrDbNotOpen indicates a database instance is accessed before it
	// is opened or after it has been closed.
	ErrDbNotOpen = ErrorKind("ErrDbNotOpen")

	// ErrDbCorruption indicates the underlying storage engine detected
	// corrupted data.
	ErrDbCorruption = ErrorKind("ErrDbCorruption")

	// ErrDbOpenFailed indicates the underlying storage engine could not
	// open its backing files.
	ErrDbOpenFailed = ErrorKind("ErrDbOpenFailed")
)

// Error wraps an ErrorKind with the operation that produced it and a
// human-readable description, the same way wire.WireError does for the
// wire-protocol layer.
type Error struct {
	Op          string
	Err         error
	Description string
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error, which is always an
// ErrorKind for errors produced within this package.
func (e *Error) Unwrap() error {
	return e.Err
}

// makeError creates an *Error given a set of arguments.
func makeError(op string, kind ErrorKind, desc string) *Error {
	return &Error{Op: op, Err: kind, Description: desc}
}
