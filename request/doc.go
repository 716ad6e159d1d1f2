// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the value types that flow through the request
pipeline: Request (describes a logical outgoing call), Response (the
buffered result of a completed exchange), and State (per-call pipeline
state).

A Request describes how to make a logical HTTP call, potentially
involving repeated wire-level attempts if an interceptor votes to retry
a failed one. For those familiar with the Go standard HTTP library,
net/http, a Request looks like a stripped-down http.Request structure
with all server-side fields removed, and the body fields replaced with
a simple []byte, because the pipeline requires a pre-buffered request
body. Fields are named and typed consistently with http.Request
wherever possible.

Create a request to send through a client:

	req, err := request.New("GET", "https://example.com", nil)
	...
	resp, err := client.Send(ctx, req)
	...

Cancellation and timeouts are carried by the context passed to the
client's sending method, not by the Request itself; the Request only
carries the what of the call, never its lifecycle.

A Response is only built after the transport completed an exchange and
the body was fully buffered. Interceptor Process hooks may rewrite it
in place before it reaches the caller.

A State tracks one logical call across its retries: the current
Request, the most recent Response or error, the zero-based retry
counter, and a free-form tag map interceptors and observers can use to
pass data along the call. You will typically not allocate State
instances yourself; the client's pipeline hands them to every
interceptor hook and observer notification.
*/
package request
