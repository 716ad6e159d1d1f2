// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "net/http"

// A Response is the buffered result of a completed wire-level
// exchange.
//
// A Response is only constructed by the pipeline after the transport
// returned, and is handed to the caller only after every interceptor's
// Process hook has run. Process hooks may rewrite the status code,
// headers and body in place, for example to unwrap a response
// envelope.
type Response struct {
	// StatusCode is the numeric HTTP status of the exchange.
	StatusCode int

	// Header contains the response header fields.
	Header http.Header

	// Body is the complete response body, fully read and buffered by
	// the transport. It may have zero length but is never read lazily.
	Body []byte
}

// IsSuccess reports whether the status code is in the 2xx or 3xx
// range. The pipeline classifies both ranges as successful outcomes;
// redirect following is a transport concern, not a status concern.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 400
}

// IsClientError reports whether the status code is in the 4xx range.
func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError reports whether the status code is in the 5xx range.
func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode < 600
}
