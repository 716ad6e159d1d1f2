// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"

	"github.com/narq/httpc/request"
)

// An Observer is a pure notification sink for pipeline activity. It
// never influences control flow: its return is ignored, and a panic
// inside an observer is recovered so it cannot abort the call.
//
// Implementations must be safe for concurrent use, as one observer
// instance sees every in-flight call on a client.
type Observer interface {
	// OnPrepared fires after every Prepare hook has run, immediately
	// before the attempt is handed to the transport.
	OnPrepared(ctx context.Context, req *request.Request, state *request.State)

	// OnTransportError fires after the transport failed an attempt,
	// before any Handle hook runs.
	OnTransportError(ctx context.Context, err error, state *request.State)

	// OnResponse fires after the transport completed an exchange,
	// regardless of status code, before any Process hook runs.
	OnResponse(ctx context.Context, resp *request.Response, state *request.State)
}

// observers dispatches a notification to every installed observer,
// isolating the pipeline from observer panics.
type observers []Observer

func (o observers) onPrepared(ctx context.Context, state *request.State) {
	for _, ob := range o {
		notify(func() { ob.OnPrepared(ctx, state.Request, state) })
	}
}

func (o observers) onTransportError(ctx context.Context, err error, state *request.State) {
	for _, ob := range o {
		notify(func() { ob.OnTransportError(ctx, err, state) })
	}
}

func (o observers) onResponse(ctx context.Context, state *request.State) {
	for _, ob := range o {
		notify(func() { ob.OnResponse(ctx, state.Response, state) })
	}
}

func notify(f func()) {
	defer func() {
		_ = recover()
	}()
	f()
}
