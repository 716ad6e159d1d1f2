// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"

	"github.com/narq/httpc/request"
)

// An Interceptor is a pluggable pipeline participant. It can rewrite
// the outgoing request before each attempt, react to a transport
// failure, and rewrite or evaluate the incoming response.
//
// Interceptors run in a fixed order within one call. Prepare hooks run
// in list order, client-level interceptors before per-call ones, so
// the most call-specific preparation lands last and wins. Handle and
// Process hooks run in reverse list order, so the most call-specific
// interceptor reacts first and its retry vote is not starved by a
// client-level interceptor having already decided to proceed.
//
// Implementations must be stateless or internally synchronized: one
// interceptor instance is shared by all in-flight calls on a client.
type Interceptor interface {
	// Prepare may mutate req before the attempt is sent: add or
	// replace headers, sign the request, inject authentication
	// material. It runs again before every retry, so volatile values
	// such as timestamps and signatures are refreshed per attempt. A
	// non-nil error aborts the call with a Preparation failure.
	Prepare(ctx context.Context, req *request.Request, state *request.State) error

	// Handle is invoked only when the transport call itself failed,
	// never for a response with a non-2xx status. It votes on whether
	// the failed attempt should be retried.
	Handle(ctx context.Context, err error, state *request.State) Evaluation

	// Process is invoked for every completed exchange regardless of
	// status code. It may rewrite resp's status, headers and body in
	// place, for example to unwrap an envelope, and votes on whether
	// the attempt should be retried. A non-nil error aborts the call
	// with a Processing failure.
	Process(ctx context.Context, resp *request.Response, state *request.State) (Evaluation, error)
}

// The PrepareFunc type adapts an ordinary function into an Interceptor
// that only participates in request preparation. Its Handle and
// Process hooks vote to proceed.
type PrepareFunc func(ctx context.Context, req *request.Request, state *request.State) error

// Prepare calls f(ctx, req, state).
func (f PrepareFunc) Prepare(ctx context.Context, req *request.Request, state *request.State) error {
	return f(ctx, req, state)
}

// Handle votes to proceed.
func (f PrepareFunc) Handle(context.Context, error, *request.State) Evaluation {
	return Proceed()
}

// Process votes to proceed.
func (f PrepareFunc) Process(context.Context, *request.Response, *request.State) (Evaluation, error) {
	return Proceed(), nil
}

// The HandleFunc type adapts an ordinary function into an Interceptor
// that only reacts to transport failures. Its Prepare hook is a no-op
// and its Process hook votes to proceed.
type HandleFunc func(ctx context.Context, err error, state *request.State) Evaluation

// Prepare does nothing.
func (f HandleFunc) Prepare(context.Context, *request.Request, *request.State) error {
	return nil
}

// Handle calls f(ctx, err, state).
func (f HandleFunc) Handle(ctx context.Context, err error, state *request.State) Evaluation {
	return f(ctx, err, state)
}

// Process votes to proceed.
func (f HandleFunc) Process(context.Context, *request.Response, *request.State) (Evaluation, error) {
	return Proceed(), nil
}

// The ProcessFunc type adapts an ordinary function into an Interceptor
// that only evaluates completed exchanges. Its Prepare hook is a no-op
// and its Handle hook votes to proceed.
type ProcessFunc func(ctx context.Context, resp *request.Response, state *request.State) (Evaluation, error)

// Prepare does nothing.
func (f ProcessFunc) Prepare(context.Context, *request.Request, *request.State) error {
	return nil
}

// Handle votes to proceed.
func (f ProcessFunc) Handle(context.Context, error, *request.State) Evaluation {
	return Proceed()
}

// Process calls f(ctx, resp, state).
func (f ProcessFunc) Process(ctx context.Context, resp *request.Response, state *request.State) (Evaluation, error) {
	return f(ctx, resp, state)
}

// A chain is the merged, ordered interceptor list for one call:
// client-level interceptors first, per-call interceptors after.
type chain []Interceptor

// prepare runs every Prepare hook in list order, checking for
// cancellation before each one.
func (c chain) prepare(ctx context.Context, state *request.State) error {
	for _, ic := range c {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := ic.Prepare(ctx, state.Request, state); err != nil {
			return err
		}
	}
	return nil
}

// handle runs Handle hooks in reverse list order until one dissents
// from proceeding. Cancellation is checked before each hook and after
// each evaluation; the second return value is the context error if
// cancellation was observed.
func (c chain) handle(ctx context.Context, err error, state *request.State) (Evaluation, error) {
	for i := len(c) - 1; i >= 0; i-- {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Proceed(), ctxErr
		}
		ev := c[i].Handle(ctx, err, state)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Proceed(), ctxErr
		}
		if ev.retry() {
			return ev, nil
		}
	}
	return Proceed(), nil
}

// process runs Process hooks in reverse list order until one dissents
// from proceeding or fails. Cancellation is checked before each hook
// and after each evaluation; a context error is reported through the
// same error return as a hook failure and is told apart by the caller.
func (c chain) process(ctx context.Context, state *request.State) (Evaluation, error) {
	for i := len(c) - 1; i >= 0; i-- {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Proceed(), ctxErr
		}
		ev, err := c[i].Process(ctx, state.Response, state)
		if err != nil {
			return Proceed(), err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Proceed(), ctxErr
		}
		if ev.retry() {
			return ev, nil
		}
	}
	return Proceed(), nil
}
