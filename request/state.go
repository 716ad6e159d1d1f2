// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// A State carries the per-call pipeline state of a single logical
// call.
//
// A fresh State is created at the start of each public client call,
// threaded through every interceptor hook and every retry attempt of
// that call, and discarded when the call returns. It is never shared
// between calls.
//
// Interceptors and observers may stash data on a State using SetValue
// and read it back using Value. They should treat the exported fields
// as owned by the pipeline: the only sanctioned mutation is rewriting
// the Request from a Prepare hook and the Response from a Process
// hook.
type State struct {
	// Request is the request for the current attempt. Prepare hooks
	// run against it before every attempt, so on a retry it reflects
	// all preparation done for that retry, not the original input.
	Request *Request

	// Response is the buffered response received in the most recent
	// attempt. It is nil while an attempt is underway and nil after an
	// attempt that ended in a transport error.
	Response *Response

	// Err is the error from the most recent attempt, nil if the
	// attempt produced a response. While a call is in flight Err may
	// fluctuate between nil and non-nil values across retries.
	Err error

	// Attempt is the zero-based retry counter. It is zero on the
	// initial attempt, one on the first retry, and so on. It strictly
	// increases by one per retry and never resets within one logical
	// call.
	Attempt int

	// Start is the time the call entered the pipeline.
	Start time.Time

	// End is the time the call left the pipeline. It is the zero time
	// while the call is in flight.
	End time.Time

	// data backs the free-form tag map exposed through Value and
	// SetValue.
	data context.Context
}

// NewState returns a State for a fresh logical call on req.
func NewState(req *Request) *State {
	return &State{Request: req, Start: time.Now()}
}

// StatusCode returns the status code of the response from the most
// recent attempt, or 0 if there is no response.
func (s *State) StatusCode() int {
	if s.Response == nil {
		return 0
	}
	return s.Response.StatusCode
}

// Header returns the response headers from the most recent attempt,
// or a nil header if there is no response. A nil http.Header is safe
// for read-only use.
func (s *State) Header() http.Header {
	if s.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}
	return s.Response.Header
}

// Duration returns the duration of the call so far, or its total
// duration once it has ended.
func (s *State) Duration() time.Duration {
	if s.Start.IsZero() {
		return 0
	} else if s.End.IsZero() {
		return time.Since(s.Start)
	}
	return s.End.Sub(s.Start)
}

// Timeout reports whether Err currently holds an error that indicates
// a timeout, either on the attempt or on the caller's context.
func (s *State) Timeout() bool {
	if s.Err == nil {
		return false
	}
	var t interface{ Timeout() bool }
	if errors.As(s.Err, &t) && t.Timeout() {
		return true
	}
	return errors.Is(s.Err, context.DeadlineExceeded)
}

// SetValue associates value with key in the call's tag map.
//
// The key must follow the same rules as the key parameter in
// context.WithValue: it may not be nil, it must be comparable, and it
// should not be of a built-in type, to avoid collisions between
// unrelated interceptors tagging the same call.
func (s *State) SetValue(key, value interface{}) {
	ctx := s.data
	if ctx == nil {
		ctx = context.Background()
	}
	s.data = context.WithValue(ctx, key, value)
}

// Value returns the tag value associated with key for this call, or
// nil if there is none.
func (s *State) Value(key interface{}) interface{} {
	if s.data == nil {
		return nil
	}
	return s.data.Value(key)
}
