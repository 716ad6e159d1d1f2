// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"

	"github.com/narq/httpc"
	"github.com/narq/httpc/request"
)

// New composes a Decider and a Waiter into an interceptor that votes
// to retry, after the Waiter's delay, whenever the Decider says the
// current outcome is worth retrying.
//
// The pipeline never retries on its own: a 5xx response without an
// interceptor like this one is a terminal failure. Install the
// interceptor on the client to make retry policy client-wide, or pass
// it per call to scope it to one call.
func New(d Decider, w Waiter) httpc.Interceptor {
	if d == nil {
		panic("httpc/retry: nil decider")
	}
	if w == nil {
		panic("httpc/retry: nil waiter")
	}
	return &interceptor{decider: d, waiter: w}
}

// Default is a retry interceptor composing DefaultDecider and
// DefaultWaiter: transient transport errors and 429/502/503/504
// responses are retried with jittered exponential backoff, within the
// client's retry budget.
var Default = New(DefaultDecider, DefaultWaiter)

type interceptor struct {
	decider Decider
	waiter  Waiter
}

func (i *interceptor) Prepare(context.Context, *request.Request, *request.State) error {
	return nil
}

func (i *interceptor) Handle(_ context.Context, _ error, state *request.State) httpc.Evaluation {
	return i.evaluate(state)
}

func (i *interceptor) Process(_ context.Context, _ *request.Response, state *request.State) (httpc.Evaluation, error) {
	return i.evaluate(state), nil
}

func (i *interceptor) evaluate(state *request.State) httpc.Evaluation {
	if !i.decider.Decide(state) {
		return httpc.Proceed()
	}
	if d := i.waiter.Wait(state); d > 0 {
		return httpc.RetryAfter(d)
	}
	return httpc.Retry()
}
