// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"

	"github.com/google/uuid"

	"github.com/narq/httpc/request"
)

// HeaderXRequestID is the standard header name for request tracing.
const HeaderXRequestID = "X-Request-ID"

// NewTraceIDInterceptor returns an interceptor that stamps each
// outgoing request with a fresh UUID in the X-Request-ID header,
// unless the header is already present. The ID is also stored in the
// call state under TraceIDKey so observers can correlate their output
// with the request.
//
// Because the header survives across retries once set, every attempt
// of one logical call shares the same trace ID.
func NewTraceIDInterceptor() Interceptor {
	return NewTraceIDInterceptorFor(HeaderXRequestID)
}

// NewTraceIDInterceptorFor is NewTraceIDInterceptor with a custom
// header name. An empty header name means HeaderXRequestID.
func NewTraceIDInterceptorFor(header string) Interceptor {
	if header == "" {
		header = HeaderXRequestID
	}
	return PrepareFunc(func(_ context.Context, req *request.Request, state *request.State) error {
		id := req.Header.Get(header)
		if id == "" {
			id = uuid.NewString()
			req.Header.Set(header, id)
		}
		state.SetValue(TraceIDKey, id)
		return nil
	})
}

type traceIDKey struct{}

// TraceIDKey is the call-state tag key under which the trace-ID
// interceptor records the request's trace ID.
var TraceIDKey = traceIDKey{}

// TraceID returns the trace ID the trace-ID interceptor recorded on
// the call state, or the empty string if none was recorded.
func TraceID(state *request.State) string {
	id, _ := state.Value(TraceIDKey).(string)
	return id
}
