// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimitInterceptor(t *testing.T) {
	t.Run("nil limiter panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewRateLimitInterceptor(nil)
		})
	})
	t.Run("waits for a token", func(t *testing.T) {
		t.Parallel()
		// One token per 50ms, bucket starts full with one token: the
		// second prepare must wait roughly one refill interval.
		l := rate.NewLimiter(rate.Every(50*time.Millisecond), 1)
		ic := NewRateLimitInterceptor(l)
		state := newTestState(t)

		start := time.Now()
		require.NoError(t, ic.Prepare(context.Background(), state.Request, state))
		require.NoError(t, ic.Prepare(context.Background(), state.Request, state))

		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})
	t.Run("cancellation aborts the wait", func(t *testing.T) {
		t.Parallel()
		l := rate.NewLimiter(rate.Every(time.Hour), 1)
		ic := NewRateLimitInterceptor(l)
		state := newTestState(t)
		require.NoError(t, ic.Prepare(context.Background(), state.Request, state))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := ic.Prepare(ctx, state.Request, state)

		assert.Error(t, err)
	})
}
