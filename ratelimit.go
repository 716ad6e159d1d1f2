// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/narq/httpc/request"
)

// NewRateLimitInterceptor returns an interceptor that waits for a
// token from l before every attempt, including retries, capping the
// client's outgoing request rate across all concurrent calls sharing
// the limiter.
//
// The wait honors the call context: cancellation while queued for a
// token aborts the call with a Preparation failure wrapping the
// context error, which the pipeline folds into its cancellation
// handling.
func NewRateLimitInterceptor(l *rate.Limiter) Interceptor {
	if l == nil {
		panic("httpc: nil rate limiter")
	}
	return PrepareFunc(func(ctx context.Context, _ *request.Request, _ *request.State) error {
		return l.Wait(ctx)
	})
}
