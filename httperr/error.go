// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httperr

import (
	"errors"
	"fmt"

	"github.com/narq/httpc/request"
)

// An Error is the sole error surface of the request pipeline. It tags
// a failure with its taxonomy Kind, carries the wrapped cause if one
// exists, and for status classifications carries the full response.
type Error struct {
	// Kind is the taxonomy member this failure belongs to.
	Kind Kind

	// Response is the full buffered response, set only for the
	// ClientStatus, ServerStatus and UnexpectedStatus kinds, so the
	// caller can inspect and decode the error body without the
	// pipeline committing to one error schema.
	Response *request.Response

	// Attempts is the total number of attempts made, set only for the
	// RetryBudget kind.
	Attempts int

	// cause is the wrapped underlying error, which may be nil for
	// status classifications.
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Response != nil:
		return fmt.Sprintf("httpc: %s error: status code %d", e.Kind, e.Response.StatusCode)
	case e.Kind == RetryBudget:
		return fmt.Sprintf("httpc: retry budget exhausted after %d attempts", e.Attempts)
	case e.cause != nil:
		return fmt.Sprintf("httpc: %s error: %v", e.Kind, e.cause)
	default:
		return fmt.Sprintf("httpc: %s error", e.Kind)
	}
}

// Unwrap returns the underlying cause, if any, for use with errors.Is
// and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Timeout reports whether the underlying cause indicates a timeout.
func (e *Error) Timeout() bool {
	var t interface{ Timeout() bool }
	return errors.As(e.cause, &t) && t.Timeout()
}

// New returns an Error of the given kind wrapping cause.
func New(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

// WithResponse returns an Error of the given kind carrying resp.
func WithResponse(kind Kind, resp *request.Response) *Error {
	return &Error{Kind: kind, Response: resp}
}

// Exhausted returns a RetryBudget error recording the total number of
// attempts made before the budget ran out.
func Exhausted(attempts int) *Error {
	return &Error{Kind: RetryBudget, Attempts: attempts}
}

// KindOf returns the taxonomy kind of err and true if err is, or
// wraps, a pipeline Error; otherwise it returns zero and false.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err is, or wraps, a pipeline Error of the given
// kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// ResponseOf returns the response carried by err, if err is, or
// wraps, a pipeline Error holding one.
func ResponseOf(err error) (*request.Response, bool) {
	var e *Error
	if errors.As(err, &e) && e.Response != nil {
		return e.Response, true
	}
	return nil, false
}
