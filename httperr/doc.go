// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package httperr defines the closed failure taxonomy of the request
pipeline and the status code classification that feeds it.

Every error returned by the pipeline is an *Error tagged with exactly
one Kind. Raw transport and codec errors never escape: they are
recovered at the boundary where they occur and wrapped into the
matching taxonomy member, with the original cause reachable through
errors.Unwrap.

Use the helpers to dispatch on failures without unwrapping by hand:

	resp, err := client.Send(ctx, req)
	if httperr.Is(err, httperr.ClientStatus) {
		body, _ := httperr.ResponseOf(err)
		... // decode body.Body into a candidate error schema
	}
*/
package httperr
