// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package httpc provides a pluggable HTTP request-execution pipeline: an
interceptor chain that can rewrite, evaluate and retry exchanges, a
closed failure taxonomy, and a typed fetch surface over MIME-tagged
codecs.

Create a Client to begin making calls.

	client := &httpc.Client{}
	req, err := request.New("GET", "https://www.example.com", nil)
	...
	resp, err := client.Send(ctx, req)

For typed calls, use Fetch with any result type the codec registry can
decode:

	user, err := httpc.Fetch[User](ctx, client, "GET",
		"https://api.example.com/users/1", nil)

Interceptors participate in every attempt of a call: Prepare hooks run
in list order before the transport is invoked, and Handle (on
transport failure) and Process (on every completed exchange) hooks run
in reverse list order after it. Any interceptor may vote to retry,
immediately or after a delay:

	authed := httpc.PrepareFunc(func(_ context.Context, req *request.Request, _ *request.State) error {
		req.Header.Set("Authorization", "Bearer "+token())
		return nil
	})
	client := &httpc.Client{
		Interceptors: []httpc.Interceptor{authed, retry.Default},
	}

Status codes never trigger retries by themselves: a 503 without a
retry-voting interceptor is a terminal ServerStatus failure. Package
retry provides the composable opt-in policy.

Observers are pure notification sinks with no influence on outcomes;
NewLogObserver and NewMetricsObserver provide structured logging and
Prometheus metrics for pipeline activity.

Every failure returned by the pipeline is an *httperr.Error tagged
with exactly one taxonomy kind; see package httperr.

For control over how wire-level requests are sent, supply a custom
Transport, or keep the default HTTPTransport and give it any HTTPDoer,
such as a configured http.Client:

	client := &httpc.Client{
		Transport: &httpc.HTTPTransport{Doer: &http.Client{...}},
	}
*/
package httpc
