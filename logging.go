// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/narq/httpc/request"
)

// A LogObserver emits structured log lines for prepared requests,
// transport errors and responses. Like every observer it is a pure
// sink: it never changes the outcome of a call.
type LogObserver struct {
	log zerolog.Logger
}

// NewLogObserver returns an observer logging pipeline activity through
// log. Requests log at debug level, responses at debug level, and
// transport errors at warn level, since a transport error may still be
// retried and resolved within the same call.
func NewLogObserver(log zerolog.Logger) *LogObserver {
	return &LogObserver{log: log}
}

// OnPrepared logs the fully prepared request for the next attempt.
func (o *LogObserver) OnPrepared(_ context.Context, req *request.Request, state *request.State) {
	o.event(o.log.Debug(), state).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("body_bytes", len(req.Body)).
		Msg("request prepared")
}

// OnTransportError logs a failed attempt.
func (o *LogObserver) OnTransportError(_ context.Context, err error, state *request.State) {
	o.event(o.log.Warn(), state).
		Err(err).
		Dur("elapsed", state.Duration()).
		Msg("transport error")
}

// OnResponse logs a completed exchange, whatever its status code.
func (o *LogObserver) OnResponse(_ context.Context, resp *request.Response, state *request.State) {
	o.event(o.log.Debug(), state).
		Int("status", resp.StatusCode).
		Int("body_bytes", len(resp.Body)).
		Dur("elapsed", state.Duration()).
		Msg("response received")
}

func (o *LogObserver) event(evt *zerolog.Event, state *request.State) *zerolog.Event {
	evt = evt.Int("attempt", state.Attempt)
	if id := TraceID(state); id != "" {
		evt = evt.Str("trace_id", id)
	}
	return evt
}
