// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httperr

import "github.com/narq/httpc/request"

// FromStatus classifies the final status code of a completed exchange
// into the failure taxonomy.
//
// Status codes in the 2xx and 3xx ranges are successful outcomes and
// classify to nil. 4xx classifies to a ClientStatus error, 5xx to a
// ServerStatus error, and any other code to an UnexpectedStatus error.
// Every non-nil classification carries resp in full.
//
// Classification is terminal: a 4xx or 5xx status never triggers a
// retry by itself. Status-driven retries must be opted into by
// supplying an interceptor that votes to retry on the codes it cares
// about.
func FromStatus(resp *request.Response) *Error {
	switch {
	case resp.IsSuccess():
		return nil
	case resp.IsClientError():
		return WithResponse(ClientStatus, resp)
	case resp.IsServerError():
		return WithResponse(ServerStatus, resp)
	default:
		return WithResponse(UnexpectedStatus, resp)
	}
}
