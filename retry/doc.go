// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry provides the opt-in retry policy for the request
// pipeline: composable deciders that say whether an outcome is worth
// retrying, waiters that say how long to back off first, and the New
// constructor that folds a decider and waiter into an interceptor the
// client consults like any other.
//
// The pipeline itself never retries on a status code; install one of
// these interceptors to opt in:
//
//	client := &httpc.Client{
//		Interceptors: []httpc.Interceptor{retry.Default},
//	}
//
// Compose deciders for finer policy, for example to retry 5xx only for
// the first two seconds of a call:
//
//	d := retry.StatusCode(500, 502, 503, 504).And(retry.Before(2 * time.Second))
//	ic := retry.New(d, retry.NewFixedWaiter(100*time.Millisecond))
package retry
